package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/docrules/pkg/errors"
	"github.com/arthur-debert/docrules/pkg/logging"
	"github.com/arthur-debert/docrules/pkg/paths"
	"github.com/arthur-debert/docrules/pkg/style"
)

// debounceWindow coalesces the event bursts editors produce on save.
const debounceWindow = 250 * time.Millisecond

// newWatchCmd creates the watch command: revalidate rule-sets on change.
func newWatchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch rule-set files and revalidate them on change",
		Long: `Watch monitors cursorrules.json and the .cursor/rules directory and
reloads the rule-sets whenever they change, reporting validation errors as
soon as they are introduced. A broken edit never discards the last good
rule-sets; the error is reported and the previous state stays in effect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(flags)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, cmd, flags, sess)
		},
	}
}

func runWatch(ctx context.Context, cmd *cobra.Command, flags *rootFlags, sess *session) error {
	logger := logging.GetLogger("cli.watch")
	out := cmd.OutOrStdout()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "create filesystem watcher")
	}
	defer func() { _ = watcher.Close() }()

	// Watching the directories rather than the files survives the
	// rename-and-replace save strategy most editors use.
	watchDirs := map[string]struct{}{
		sess.paths.RepoRoot(): {},
		filepath.Join(sess.paths.RepoRoot(), filepath.FromSlash(paths.RulesDirName)): {},
	}
	for _, f := range flags.ruleFiles {
		watchDirs[filepath.Dir(absolutize(sess.paths, f))] = struct{}{}
	}
	for dir := range watchDirs {
		if err := watcher.Add(dir); err != nil {
			logger.Debug().Err(err).Str("dir", dir).Msg("Not watching directory")
		}
	}

	fmt.Fprintf(out, "Watching rule-sets under %s (%d loaded)\n",
		sess.paths.RepoRoot(), sess.collection.Count())

	var timer *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRuleSetEvent(event) {
				continue
			}
			logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Rule-set change")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			fresh, err := newSession(flags)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), style.RenderError(err))
				logger.Error().Err(err).Msg("Rule-set reload failed, keeping previous rule-sets")
				continue
			}
			sess = fresh
			fmt.Fprintf(out, "%s Reloaded %d rule-set(s)\n", style.MatchIndicator, sess.collection.Count())

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("Watcher error")
		}
	}
}

// isRuleSetEvent reports whether a filesystem event concerns a rule-set file.
func isRuleSetEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if filepath.Base(event.Name) == paths.RootRuleSetFile {
		return true
	}
	switch filepath.Ext(event.Name) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
