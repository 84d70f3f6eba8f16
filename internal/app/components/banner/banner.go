package banner

import (
	"context"
	"fmt"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"
)

type BannerType string

const (
	BannerError   BannerType = "error"
	BannerSuccess BannerType = "success"
	BannerInfo    BannerType = "info"
)

type BannerProps struct {
	Type        BannerType
	Message     string
	Description string
	Dismissable bool
	ID          string
	// AutoDismiss removes the banner after this many seconds when > 0.
	AutoDismiss int
	Class       string
}

func (p BannerProps) classes() string {
	base := "rounded-md border p-4 text-sm"
	var tone string
	switch p.Type {
	case BannerSuccess:
		tone = "border-green-200 bg-green-50 text-green-800"
	case BannerInfo:
		tone = "border-blue-200 bg-blue-50 text-blue-800"
	default:
		tone = "border-red-200 bg-red-50 text-red-800"
	}
	return twmerge.Merge(base, tone, p.Class)
}

// Banner renders a transient notification fragment. Auth handlers return it
// as an HTMX swap target for validation and server errors.
func Banner(props BannerProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s" class="%s" role="alert"`,
			templ.EscapeString(props.ID), templ.EscapeString(props.classes())); err != nil {
			return err
		}
		if props.AutoDismiss > 0 {
			if _, err := fmt.Fprintf(w, ` data-auto-dismiss="%d"`, props.AutoDismiss); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `><p class="font-medium">%s</p>`, templ.EscapeString(props.Message)); err != nil {
			return err
		}
		if props.Description != "" {
			if _, err := fmt.Fprintf(w, `<p class="mt-1">%s</p>`, templ.EscapeString(props.Description)); err != nil {
				return err
			}
		}
		if props.Dismissable {
			if _, err := fmt.Fprintf(w, `<button type="button" class="float-right font-bold" onclick="document.getElementById('%s').remove()">&times;</button>`,
				templ.EscapeString(props.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
