/*
Package locate finds the external resources conversion work refers to,
i.e., installed legacy fonts and scheme files holding mapping tables.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package locate

import (
	"context"
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/lipi/core"
	"github.com/npillmayer/lipi/core/font"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lipi.fonts'
func tracer() tracing.Trace {
	return tracing.Select("lipi.fonts")
}

// Font returns the file path of an installed font, searching the
// platform's font directories.
func Font(name string) (string, error) {
	fpath, err := findfont.Find(name)
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "font not installed: %s", name)
	}
	tracer().Debugf("font %s found at %s", name, fpath)
	return fpath, nil
}

// --- Font resolving --------------------------------------------------------

type fontPlusErr struct {
	font *font.ScalableFont
	err  error
}

// FontPromise is handed out by ResolveFont for awaiting an ongoing
// font search.
type FontPromise interface {
	Font() (*font.ScalableFont, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.ScalableFont, error)
}

func (loader fontLoader) Font() (*font.ScalableFont, error) {
	return loader.await(context.Background())
}

// ResolveFont searches a font by name in the platform's font
// directories and loads it. The search runs concurrently, clients
// await the result through the returned promise.
func ResolveFont(name string) FontPromise {
	ch := make(chan fontPlusErr)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		fpath, err := Font(name)
		if err == nil {
			result.font, result.err = font.LoadOpenTypeFont(fpath)
		} else {
			result.err = err
		}
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.ScalableFont, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

// --- Scheme files ----------------------------------------------------------

// TableFile searches a scheme file `<name>.lipi`. The search covers,
// in order: the directory dir if non-empty, the user's configuration
// directory under lipi/schemes, and the current working directory.
func TableFile(name string, dir string) (string, error) {
	fname := name
	if filepath.Ext(fname) == "" {
		fname += ".lipi"
	}
	var candidates []string
	if dir != "" {
		candidates = append(candidates, filepath.Join(dir, fname))
	}
	if uconfdir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(uconfdir, "lipi", "schemes", fname))
	}
	candidates = append(candidates, fname)
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			tracer().Debugf("scheme file for %s found at %s", name, c)
			return c, nil
		}
	}
	return "", core.Error(core.EMISSING, "no scheme file found for %q", name)
}
