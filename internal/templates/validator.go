package templates

import "github.com/rdt-dev/rdt/internal/project"

// Prober reports whether a template exists.
type Prober interface {
	TemplateExists(id string) bool
}

// ValidateTemplatesExist probes every template the combination requires.
// It returns false and the missing ids when any are absent.
func ValidateTemplatesExist(probe Prober, fw project.Framework, orm project.ORM) (bool, []string) {
	var missing []string
	for _, id := range RequiredTemplates(fw, orm) {
		if !probe.TemplateExists(id) {
			missing = append(missing, id)
		}
	}
	return len(missing) == 0, missing
}
