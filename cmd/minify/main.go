package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/woozymasta/geodots/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/svg"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Dir string `short:"d" long:"dir" env:"ASSETS_DIR" description:"Viewer assets directory" default:"assets"`
}

type PageData struct {
	CSS string
	JS  string
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	size, err := build(opts.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", opts.Dir).Msg("Failed to build viewer")
	}

	log.Info().Str("dir", opts.Dir).Int("html_bytes", size).Msg("Minify done")
}

// build renders index.html and favicon.svg in dir from the viewer sources
// and returns the size of the minified page.
func build(dir string) (int, error) {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/javascript", js.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)

	var page PageData
	var icon string
	for _, asset := range []struct {
		mediaType string
		name      string
		dst       *string
	}{
		{"text/css", "style.css", &page.CSS},
		{"text/javascript", "script.js", &page.JS},
		{"image/svg+xml", "globe.svg", &icon},
	} {
		out, err := minifyFile(m, asset.mediaType, filepath.Join(dir, asset.name))
		if err != nil {
			return 0, err
		}
		*asset.dst = out
	}

	tplPath := filepath.Join(dir, "index.html.tpl")
	tmpl, err := template.ParseFiles(tplPath)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", tplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return 0, fmt.Errorf("execute %s: %w", tplPath, err)
	}

	finalHTML, err := m.String("text/html", buf.String())
	if err != nil {
		return 0, fmt.Errorf("minify html: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(finalHTML), 0644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(dir, "favicon.svg"), []byte(icon), 0644); err != nil {
		return 0, err
	}

	return len(finalHTML), nil
}

func minifyFile(m *minify.M, mediaType, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	out, err := m.String(mediaType, string(raw))
	if err != nil {
		return "", fmt.Errorf("minify %s: %w", path, err)
	}

	return out, nil
}
