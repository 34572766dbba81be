// Package templates renders the project template set and maps framework/ORM
// combinations to the templates each one needs.
package templates

import "time"

// TemplateInfo describes a single template in a template set.
type TemplateInfo struct {
	// ID is the slash-separated template identifier.
	ID string `json:"id"`

	// SearchRoot names the template set the template was found in.
	SearchRoot string `json:"searchRoot"`

	// Size is the size of the template source in bytes.
	Size int64 `json:"size"`

	// Modified is the template's modification time. Embedded templates
	// report the zero time.
	Modified time.Time `json:"modified"`
}
