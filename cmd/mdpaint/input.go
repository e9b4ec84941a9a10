package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// inputSource is one document to render. Local sources are opened lazily so
// watch mode can reopen files on every change. Remote sources carry a URL
// and no opener.
type inputSource struct {
	name string
	url  string
	open func() (io.Reader, io.Closer, error)
}

func openInputs(args []string, stdin io.Reader) ([]inputSource, error) {
	if len(args) == 0 {
		return []inputSource{{
			name: "stdin",
			open: func() (io.Reader, io.Closer, error) { return stdin, nil, nil },
		}}, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{name: raw, url: raw}, nil
		case "file":
			path := filePathFromURL(u)
			return inputSource{name: path, open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func filePathFromURL(u *url.URL) string {
	path := u.Path
	if path == "" {
		path = u.Host
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return path
}

// watchPaths returns the local files named by args. Watching needs at
// least one and rejects stdin and remote inputs.
func watchPaths(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, errors.New("needs file inputs, not stdin")
	}
	paths := make([]string, 0, len(args))
	for _, raw := range args {
		raw = strings.TrimSpace(raw)
		u, err := url.Parse(raw)
		if err == nil && u.Scheme != "" {
			switch strings.ToLower(u.Scheme) {
			case "http", "https":
				return nil, fmt.Errorf("cannot watch remote input %s", raw)
			case "file":
				raw = filePathFromURL(u)
			}
		}
		paths = append(paths, normalizePath(raw))
	}
	return paths, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
