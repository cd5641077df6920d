// Package server exposes the solver over HTTP. It owns everything the core
// must not know about: query-string handling, HTTP status codes, and HTML
// rendering.
package server

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/eriklarko/boolean-solver/src/boolexpr"
	"github.com/eriklarko/boolean-solver/src/truthtable"
	"github.com/samber/lo"
)

// Handler answers GET requests carrying the expression in the query string.
//
//	?expr=A·B          evaluates the expression once
//	?expr=A·B&mode=tt  renders its full truth table
//
// The expression must be percent-encoded; in particular the OR operator '+'
// has to be sent as %2B, since a raw '+' decodes to a space.
type Handler struct {
	maxVariables int
}

// NewHandler creates a Handler that refuses truth tables with more than
// maxVariables distinct variables.
func NewHandler(maxVariables int) *Handler {
	return &Handler{maxVariables: maxVariables}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.RawQuery == "" {
		renderError(w, http.StatusBadRequest, "No query string provided.")
		return
	}

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		renderError(w, http.StatusBadRequest, "Failed to decode the query string.")
		return
	}

	if !values.Has("expr") {
		renderError(w, http.StatusBadRequest, "No expression provided.")
		return
	}
	expression := values.Get("expr")

	if values.Get("mode") == "tt" {
		h.serveTruthTable(w, expression)
	} else {
		h.serveEvaluation(w, expression)
	}
}

func (h *Handler) serveEvaluation(w http.ResponseWriter, expression string) {
	result, err := boolexpr.Evaluate(expression, nil)
	if err != nil {
		slog.Info("rejected expression", "expression", expression, "error", err)
		renderError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	render(w, http.StatusOK, "result", resultPage{
		Expression: expression,
		Result:     formatBool(result),
	})
}

func (h *Handler) serveTruthTable(w http.ResponseWriter, expression string) {
	table, err := truthtable.BuildWithLimit(expression, h.maxVariables)
	if err != nil {
		slog.Info("rejected expression", "expression", expression, "error", err)
		renderError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	summary := table.Summarize()
	render(w, http.StatusOK, "table", tablePage{
		Expression: expression,
		Variables: lo.Map(table.Variables, func(v rune, _ int) string {
			return string(v)
		}),
		Rows: lo.Map(table.Rows, func(row truthtable.Row, _ int) tableRow {
			return tableRow{
				Inputs: lo.Map(row.Inputs, func(input bool, _ int) string {
					return formatBool(input)
				}),
				Result: formatBool(row.Result),
			}
		}),
		Summary: fmt.Sprintf("True in %d of %d rows.", summary.TrueCount, summary.Rows),
	})
}

func formatBool(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

type resultPage struct {
	Expression string
	Result     string
}

type tableRow struct {
	Inputs []string
	Result string
}

type tablePage struct {
	Expression string
	Variables  []string
	Rows       []tableRow
	Summary    string
}

type errorPage struct {
	Message string
}

// html/template escapes the expression for us, so whatever came in through
// the query string is safe to echo back.
var pages = template.Must(template.New("pages").Parse(`
{{define "header"}}<html><head><title>Boolean Expression Solver</title></head><body><h1>Boolean Expression Solver</h1>{{end}}
{{define "footer"}}</body></html>{{end}}

{{define "error"}}{{template "header"}}<h2>Error: {{.Message}}</h2>{{template "footer"}}{{end}}

{{define "result"}}{{template "header"}}<h2>Evaluation Result for Expression:</h2><p>{{.Expression}}</p><p>Result: {{.Result}}</p>{{template "footer"}}{{end}}

{{define "table"}}{{template "header"}}<h2>Truth Table for Expression:</h2><p>{{.Expression}}</p><table border='1' cellpadding='5' cellspacing='0'><tr>{{range .Variables}}<th>{{.}}</th>{{end}}<th>Result</th></tr>{{range .Rows}}<tr>{{range .Inputs}}<td>{{.}}</td>{{end}}<td>{{.Result}}</td></tr>{{end}}</table><p>{{.Summary}}</p>{{template "footer"}}{{end}}
`))

func render(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, page, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
	}
}

func renderError(w http.ResponseWriter, status int, message string) {
	render(w, status, "error", errorPage{Message: message})
}
