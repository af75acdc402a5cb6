// Package form loads questionnaires from YAML files and runs them through
// the prompt engine.
//
// # File Structure
//
//	confirm:
//	  message: Create the project?
//	  default: "Y"
//	  before: "Review your answers:"
//	questions:
//	  - question: Project name
//	    key: name
//	    required: true
//	    transform: [trim, lower]
//	  - question: Database
//	    key: db
//	    default: postgres
//	    validate: nonempty
//	  - question: Database port
//	    key: port
//	    default: "5432"
//	    validate: integer
//	    transform: [int]
//	    depends:
//	      key: db
//	      not_equals: none
//	  - question: Use Docker?
//	    key: docker
//	    boolean: true
//
// A question's depends block refers to the key of an earlier question and
// holds when exactly one of equals, not_equals or truthy matches the earlier
// answer. A boolean answer compares equal to y, yes, n and no as well as to
// true and false.
//
// # Usage
//
//	f, err := form.Load("project.yml")
//	if err != nil {
//	    return err
//	}
//	qs, err := f.Compile()
//	answers, err := p.AskAll(ctx, qs, f.Options()...)
//	err = form.Encode(os.Stdout, answers, form.YAML)
//
// Load and Parse report every problem in the file at once as
// ValidationErrors.
package form
