package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docrules/pkg/docs"
	"github.com/arthur-debert/docrules/pkg/rules"
	"github.com/arthur-debert/docrules/pkg/style"
)

// newDocsCmd creates the docs command: render the convention documents that
// apply to a path.
func newDocsCmd(flags *rootFlags) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs PATH",
		Short: "Render the convention documents that apply to a path",
		Long: `Docs resolves the path against the loaded rule-sets, collects the
documentation references from the matching rules, and renders the documents.
Markdown is rendered for the terminal; other formats are printed as-is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(flags)
			if err != nil {
				return err
			}

			matches, err := sess.collection.Resolve(args[0])
			if err != nil {
				return err
			}

			refs := rules.Documentation(matches)
			if len(refs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), style.MutedStyle.Render("No conventions apply"))
				return nil
			}

			loader := docs.NewLoader(sess.paths)
			documents := loader.LoadAll(refs)

			var renderer docs.Renderer = &docs.PlainRenderer{}
			if !raw {
				renderer = newDocRenderer(flags, sess)
			}

			out := cmd.OutOrStdout()
			for i, doc := range documents {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, style.MutedStyle.Render(fmt.Sprintf("── %s", doc.Ref)))
				fmt.Fprint(out, renderer.Render(doc.Content, doc.Format))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw document content without rendering")

	return cmd
}

// newDocRenderer builds the markdown renderer from flags and configuration.
func newDocRenderer(flags *rootFlags, sess *session) docs.Renderer {
	r := docs.NewGlamourRenderer()

	if flags.noColor || sess.config.Output.Color == "never" {
		r.Style = "notty"
	} else if sess.config.Output.Style != "" && sess.config.Output.Style != "auto" {
		r.Style = sess.config.Output.Style
	}

	if sess.config.Output.Width > 0 {
		r.Width = sess.config.Output.Width
	}

	return r
}
