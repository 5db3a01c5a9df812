package app

import (
	"bytes"
	"io"
	"log/slog"

	appvalidator "boxoffice/internal/validator"
)

func newTestApplication(opts ...func(*application)) (*application, *bytes.Buffer) {
	out := &bytes.Buffer{}

	app := &application{
		validator: appvalidator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:       out,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app, out
}
