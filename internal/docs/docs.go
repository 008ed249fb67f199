// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

// Options parameterize the documentation sub-component.
type Options struct {
	Title       string
	Version     string
	Description string
	// URL is the UI path; the schema lives at URL + "/swagger.json" and
	// URL + "/swagger.yaml".
	URL       string
	DisableUI bool
	// Routes annotate walked routes.
	Routes []Route
}

// Docs generates and serves the API document.
type Docs struct {
	opts Options

	document *Document
	jsonDoc  []byte
	yamlDoc  []byte
	ui       []byte
}

// New returns an unregistered Docs.
func New(opts Options) *Docs {
	if opts.URL == "" {
		opts.URL = "/api/doc"
	}

	return &Docs{opts: opts}
}

// Document returns the generated document; nil before Setup.
func (d *Docs) Document() *Document {
	return d.document
}

// SpecPath returns the path of the JSON document.
func (d *Docs) SpecPath() string {
	return d.base() + "/swagger.json"
}

func (d *Docs) base() string {
	return strings.TrimRight(d.opts.URL, "/")
}

// Setup snapshots the routes registered on r so far, renders the document and
// mounts the documentation routes. Routes registered afterwards, including
// the documentation routes, are not part of the document.
func (d *Docs) Setup(r chi.Router) error {
	doc := &Document{
		Swagger:  "2.0",
		BasePath: "/",
		Info: Info{
			Title:       d.opts.Title,
			Version:     d.opts.Version,
			Description: d.opts.Description,
		},
		Paths: map[string]PathItem{},
	}

	annotations := make(map[string]Operation, len(d.opts.Routes))
	for _, route := range d.opts.Routes {
		annotations[routeKey(route.Method, route.Path)] = route.Operation
	}

	walk := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		doc.addOperation(method, route, annotations)
		return nil
	}
	if err := chi.Walk(r, walk); err != nil {
		return fmt.Errorf("walking routes: %w", err)
	}

	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding swagger json: %w", err)
	}
	yamlDoc, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding swagger yaml: %w", err)
	}

	d.document = doc
	d.jsonDoc = jsonDoc
	d.yamlDoc = yamlDoc

	base := d.base()
	r.Get(base+"/swagger.json", d.serve("application/json", d.jsonDoc))
	r.Get(base+"/swagger.yaml", d.serve("application/yaml", d.yamlDoc))

	if d.opts.DisableUI {
		return nil
	}

	ui, err := renderUI(d.opts.Title, d.SpecPath())
	if err != nil {
		return err
	}
	d.ui = ui

	uiHandler := d.serve("text/html; charset=utf-8", d.ui)
	if base == "" {
		r.Get("/", uiHandler)
		return nil
	}
	r.Get(base, uiHandler)
	r.Get(base+"/", uiHandler)

	return nil
}

func (d *Docs) serve(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
