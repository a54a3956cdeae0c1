package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"microdata/internal/schema"
	"microdata/internal/services"
)

const rule = "---------------------------------------------------------------"

// Shell is the interactive front end: it asks for a vocabulary type and a
// table name, shows the proposed schema and materializes it on
// confirmation, until the user quits.
type Shell struct {
	svc    *services.SchemaService
	prompt *Prompter
	out    io.Writer
	source string
}

func New(svc *services.SchemaService, in io.Reader, out io.Writer, source string) *Shell {
	return &Shell{
		svc:    svc,
		prompt: NewPrompter(in, out),
		out:    out,
		source: source,
	}
}

func (s *Shell) Run(ctx context.Context) error {
	s.printf("MicroData Schema Shell\n")
	s.hr()

	if !s.svc.Available() {
		s.printf("%s was not found.\n", s.source)
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		done, err := s.step(ctx)
		if errors.Is(err, io.EOF) {
			s.printf("\n")
			return nil
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		s.hr()
	}
}

// step runs one type/table cycle. It reports true when the user quits.
func (s *Shell) step(ctx context.Context) (bool, error) {
	typeName, err := s.prompt.Ask("Schema Type: [Q]uit, [?] list types", nil, "q")
	if err != nil {
		return false, err
	}
	switch typeName {
	case "q", "Q":
		return true, nil
	case "?":
		s.listTypes()
		return false, nil
	}

	table, err := s.prompt.Ask("Table Name:", nil, schema.TableName(typeName))
	if err != nil {
		return false, err
	}

	desc, err := s.svc.Preview(typeName, table)
	if err != nil {
		s.printf("<error>Cannot build schema for %q: %v</error>\n", typeName, err)
		return false, nil
	}

	ok, err := s.verify(typeName, desc)
	if err != nil || !ok {
		return false, err
	}

	var promptErr error
	result := s.svc.Apply(ctx, desc, func(table string) bool {
		allow, err := s.prompt.Confirm(fmt.Sprintf("Table %q already exists. Allow overwrite?", table), false)
		if err != nil {
			promptErr = err
			return false
		}
		return allow
	})
	if promptErr != nil {
		return false, promptErr
	}

	s.report(result)
	return false, nil
}

func (s *Shell) verify(typeName string, desc *schema.Descriptor) (bool, error) {
	s.hr()
	s.printf("The following schema will be created:\n")
	s.hr()
	s.printf("Database Config: %s\n", desc.Connection)
	s.printf("Schema Type:     %s\n", typeName)
	s.printf("Table Name:      %s\n", desc.Table)
	s.hr()
	for _, f := range desc.Fields.Fields() {
		s.printf("  %-28s %s\n", f.Name, describe(f.Spec))
	}
	s.hr()
	return s.prompt.Confirm("Look okay?", true)
}

func (s *Shell) report(result services.Result) {
	switch result.Status {
	case services.StatusCreated:
		s.printf("<success>Create Table %q complete!</success>\n", result.Table)
	case services.StatusSkipped:
		s.printf("Table %q was left unchanged.\n", result.Table)
	default:
		msg := "unknown error"
		var be *services.BackendError
		if errors.As(result.Err, &be) {
			msg = be.Err.Error()
		} else if result.Err != nil {
			msg = result.Err.Error()
		}
		s.printf("<error>Table creation for %q failed %q</error>\n", result.Table, msg)
	}
}

func (s *Shell) listTypes() {
	names, err := s.svc.TypeNames()
	if err != nil {
		s.printf("<error>%v</error>\n", err)
		return
	}
	s.printf("%s\n", strings.Join(names, ", "))
}

func describe(spec schema.ColumnSpec) string {
	parts := []string{string(spec.Type)}
	if spec.Length != "" {
		parts[0] += "(" + spec.Length + ")"
	}
	if spec.IsPrimary() {
		parts = append(parts, "primary key")
	}
	if !spec.Null && !spec.IsPrimary() {
		parts = append(parts, "not null")
	}
	if spec.HasDefault() {
		parts = append(parts, fmt.Sprintf("default %#v", spec.Default))
	}
	if spec.Comment != "" {
		parts = append(parts, "-> "+spec.Comment)
	}
	return strings.Join(parts, ", ")
}

func (s *Shell) hr() {
	s.printf("%s\n", rule)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
