package httpui

import (
	"embed"
	"html/template"
	"io/fs"
	"mime"
	"net/http"

	"github.com/quantumauth-io/payment-info/internal/payment"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

const PageTemplate = "page.tmpl"

var glyphs = map[string]string{
	string(payment.IconEthereum): "Ξ",
	string(payment.IconBinance):  "◆",
	string(payment.IconTron):     "▲",
	"copy":                       "⧉",
	"check":                      "✓",
	"wallet":                     "▣",
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"glyph": func(name any) string {
			var key string
			switch v := name.(type) {
			case payment.Icon:
				key = string(v)
			case string:
				key = v
			}
			return glyphs[key]
		},
	}).ParseFS(templateFS, "templates/*.tmpl")
}

// Assets serves the embedded stylesheet and script.
func Assets() (http.FileSystem, error) {
	// Ensure common types are known (some systems miss .js/.css)
	_ = mime.AddExtensionType(".js", "application/javascript; charset=utf-8")
	_ = mime.AddExtensionType(".css", "text/css; charset=utf-8")

	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
