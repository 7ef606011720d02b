package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aman-CERP/greplite/internal/errors"
)

// Enumerate streams the sources named by targets over the returned
// channel. The channel is unbuffered so the consumer pulls sources one
// at a time, and it is closed when enumeration ends. Call again to
// restart; a channel is consumed once.
//
// Empty targets yield a single stdin source. Regular files are yielded
// directly. A directory target requires recursive mode; without it the
// target produces an ERR_201 result and enumeration moves on. With
// recursive mode the tree is walked depth-first in lexical order.
// Unreadable targets or subtrees produce error results and never stop
// the remaining work. Cancelling ctx stops enumeration between yields.
func Enumerate(ctx context.Context, targets []string, recursive bool) <-chan Result {
	results := make(chan Result)

	go func() {
		defer close(results)

		if len(targets) == 0 {
			yield(ctx, results, Result{Source: &Source{Label: StdinLabel, Stdin: true}})
			return
		}

		for _, target := range targets {
			select {
			case <-ctx.Done():
				return
			default:
			}

			info, err := os.Stat(target)
			if err != nil {
				if !yield(ctx, results, Result{Err: errors.Unreadable(target, err)}) {
					return
				}
				continue
			}

			if !info.IsDir() {
				if !yield(ctx, results, Result{Source: &Source{Path: target, Label: target}}) {
					return
				}
				continue
			}

			if !recursive {
				if !yield(ctx, results, Result{Err: errors.IsADirectory(target)}) {
					return
				}
				continue
			}

			if !walkTree(ctx, target, results) {
				return
			}
		}
	}()

	return results
}

// yield sends one result, honoring cancellation. Reports false when the
// context ended before the send completed.
func yield(ctx context.Context, results chan<- Result, r Result) bool {
	select {
	case results <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

// walkTree enumerates regular files under a directory target. Symbolic
// links inside the tree are never followed, so cyclic trees terminate.
// The target itself is resolved first: naming a symlinked directory on
// the command line searches it, with labels kept under the given name.
// Reports false when the walk was cancelled.
func walkTree(ctx context.Context, target string, results chan<- Result) bool {
	root, err := filepath.EvalSymlinks(target)
	if err != nil {
		return yield(ctx, results, Result{Err: errors.Unreadable(target, err)})
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			if !yield(ctx, results, Result{Err: errors.Unreadable(path, err)}) {
				return ctx.Err()
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		label := path
		if root != target {
			label = filepath.Join(target, strings.TrimPrefix(path, root))
		}

		if !yield(ctx, results, Result{Source: &Source{Path: path, Label: label}}) {
			return ctx.Err()
		}
		return nil
	})

	return walkErr == nil
}
