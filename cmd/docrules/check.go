package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docrules/pkg/errors"
	"github.com/arthur-debert/docrules/pkg/style"
)

// newCheckCmd creates the check command: validate file content against
// content rules, e.g. commit messages.
func newCheckCmd(flags *rootFlags) *cobra.Command {
	var contentFile string

	cmd := &cobra.Command{
		Use:   "check PATH",
		Short: "Validate file content against content rules",
		Long: `Check resolves the path against the loaded rule-sets with content in
hand, so rules carrying a content pattern are evaluated instead of skipped.
Content is read from --content-file, from the file at PATH under the
repository root when it exists, or from stdin.

The exit status is non-zero when any matching content rule fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(flags)
			if err != nil {
				return err
			}

			content, err := readCheckContent(sess, args[0], contentFile, cmd.InOrStdin())
			if err != nil {
				return err
			}

			matches, err := sess.collection.ResolveWithContent(args[0], content)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, m := range matches {
				if !m.Rule.HasContentPattern() {
					continue
				}
				if m.ContentMatched {
					fmt.Fprintf(out, "%s %s\n", style.MatchIndicator, style.Bold(m.Rule.Name))
					continue
				}
				failed++
				fmt.Fprintln(out, style.RenderCheckFailure(m))
			}

			if failed > 0 {
				return errors.Newf(errors.ErrInvalidInput, "%d content check(s) failed for %s", failed, args[0])
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&contentFile, "content-file", "", "Read content from this file instead of PATH or stdin")

	return cmd
}

// readCheckContent picks the content source: an explicit file, the path
// itself when it exists under the repository root, then stdin.
func readCheckContent(sess *session, path, contentFile string, stdin io.Reader) (string, error) {
	if contentFile != "" {
		data, err := os.ReadFile(contentFile)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "content file %s", contentFile)
		}
		return string(data), nil
	}

	if abs, err := sess.paths.DocPath(path); err == nil {
		if data, err := os.ReadFile(abs); err == nil {
			return string(data), nil
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "read content from stdin")
	}
	return string(data), nil
}
