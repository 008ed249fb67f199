package docs

import (
	"net/http"
	"regexp"
	"sort"
	"strings"
)

// Document is a Swagger 2.0 document.
type Document struct {
	Swagger  string              `json:"swagger" yaml:"swagger"`
	Info     Info                `json:"info" yaml:"info"`
	BasePath string              `json:"basePath" yaml:"basePath"`
	Paths    map[string]PathItem `json:"paths" yaml:"paths"`
}

// Info is the document metadata.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathItem maps a lower-case HTTP method to its operation.
type PathItem map[string]*Operation

// Operation describes one method on one path.
type Operation struct {
	Summary     string              `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
	Produces    []string            `json:"produces,omitempty" yaml:"produces,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

// Parameter is a path, query or header parameter.
type Parameter struct {
	Name     string `json:"name" yaml:"name"`
	In       string `json:"in" yaml:"in"`
	Type     string `json:"type" yaml:"type"`
	Required bool   `json:"required" yaml:"required"`
}

// Response documents one status code.
type Response struct {
	Description string `json:"description" yaml:"description"`
}

// Route annotates the operation registered for Method and Path. Path uses
// the chi pattern the route was registered with.
type Route struct {
	Method    string
	Path      string
	Operation Operation
}

var (
	regexpParam = regexp.MustCompile(`\{([^{}:]+):[^{}]*\}`)
	pathParam   = regexp.MustCompile(`\{([^{}]+)\}`)
)

// documentedMethods lists the methods that appear in the document; chi
// also reports "*" for method-agnostic handlers.
var documentedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// normalizePath converts a chi pattern to a Swagger path: regexp constraints
// are dropped, a trailing catch-all is removed.
func normalizePath(pattern string) string {
	p := regexpParam.ReplaceAllString(pattern, "{$1}")
	p = strings.TrimSuffix(p, "/*")
	p = strings.TrimSuffix(p, "*")
	if p == "" {
		return "/"
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func pathParameters(path string) []Parameter {
	matches := pathParam.FindAllStringSubmatch(path, -1)
	if len(matches) == 0 {
		return nil
	}

	params := make([]Parameter, 0, len(matches))
	for _, m := range matches {
		params = append(params, Parameter{Name: m[1], In: "path", Type: "string", Required: true})
	}
	return params
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + normalizePath(path)
}

// addOperation merges a walked route into doc, applying its annotation.
func (d *Document) addOperation(method, pattern string, annotations map[string]Operation) {
	method = strings.ToUpper(method)
	if !documentedMethods[method] {
		return
	}

	path := normalizePath(pattern)

	op, ok := annotations[routeKey(method, path)]
	if !ok {
		op = Operation{}
	}
	if len(op.Responses) == 0 {
		op.Responses = map[string]Response{"200": {Description: http.StatusText(http.StatusOK)}}
	}
	if op.Parameters == nil {
		op.Parameters = pathParameters(path)
	}

	item, ok := d.Paths[path]
	if !ok {
		item = PathItem{}
		d.Paths[path] = item
	}
	item[strings.ToLower(method)] = &op
}

// Operations lists "METHOD /path" keys in sorted order.
func (d *Document) Operations() []string {
	var keys []string
	for path, item := range d.Paths {
		for method := range item {
			keys = append(keys, strings.ToUpper(method)+" "+path)
		}
	}
	sort.Strings(keys)
	return keys
}
