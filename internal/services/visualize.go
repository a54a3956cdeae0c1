package services

import (
	"fmt"
	"strings"

	"microdata/internal/schema"
)

// Mermaid renders desc as a Mermaid ER diagram. Each foreign-key
// placeholder is drawn as a many-to-one link to the default table of every
// type listed in its comment.
func Mermaid(desc *schema.Descriptor) string {
	var sb strings.Builder

	sb.WriteString("erDiagram\n")

	seen := make(map[string]bool)
	for _, f := range desc.Fields.Fields() {
		if !f.Spec.IsForeignKey() || f.Spec.Comment == "" {
			continue
		}
		for _, target := range strings.Split(f.Spec.Comment, ", ") {
			key := fmt.Sprintf("%s:%s", f.Name, target)
			if seen[key] {
				continue
			}
			seen[key] = true

			sb.WriteString(fmt.Sprintf("    %s }o--o| %s : %q\n",
				strings.ToUpper(desc.Table),
				strings.ToUpper(schema.TableName(target)),
				f.Name))
		}
	}
	if len(seen) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("    %s {\n", strings.ToUpper(desc.Table)))
	for _, f := range desc.Fields.Fields() {
		annotations := ""
		if f.Spec.IsPrimary() {
			annotations = " PK"
		}
		if f.Spec.IsForeignKey() {
			annotations += " FK"
		}
		sb.WriteString(fmt.Sprintf("        %s %s%s\n", f.Spec.Type, f.Name, annotations))
	}
	sb.WriteString("    }\n")

	return sb.String()
}
