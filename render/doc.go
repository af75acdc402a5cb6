// Package render turns collected answers into files.
//
// # Overview
//
// A Renderer executes text/template templates with a set of helper
// functions and caches parsed templates by name or path. A Transaction
// stages the rendered files and writes them together: if one write fails,
// the files already written are restored to their previous state.
//
// # Usage
//
//	r := render.NewRenderer()
//	content, err := r.RenderFile("templates/config.tmpl", answers.Map())
//
//	tx := render.NewTransaction()
//	tx.AddFile("config.yml", content, 0644)
//	if err := tx.Commit(); err != nil {
//	    return err
//	}
//
// # Template Helpers
//
//	{{ .name | pascalCase }}        my_app -> MyApp
//	{{ .name | camelCase }}         my_app -> myApp
//	{{ .name | snakeCase }}         MyApp  -> my_app
//	{{ .db | default "sqlite" }}    nil or "" -> sqlite
//	{{ .tags | join ", " }}
//
// upper, lower, trim, title and quote are also available.
package render
