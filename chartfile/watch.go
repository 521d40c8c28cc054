// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartfile

import (
	"context"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the result of [Open] for the given file,
// and again every time the file is written or re-created,
// until ctx is done. fn is called on the calling goroutine.
func Watch(ctx context.Context, filename string, fn func(f *File, err error)) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// watch the directory, since editors often replace the file
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	fn(Open(filename))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fn(Open(filename))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
