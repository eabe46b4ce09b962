// Package catalog holds the static table of dashboard subjects. The table is
// defined at process start and never mutated.
package catalog

import (
	"fmt"
	"strings"
)

type Subject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var subjects = []Subject{
	{
		ID:          "warCasualties",
		Name:        "War Casualties",
		Description: "Information about war-related medical cases and emergency support contacts",
	},
	{
		ID:          "medicalServices",
		Name:        "Medical Services Availability",
		Description: "Information about availability of various medical services including pharmacies, HMO services, family health centers",
	},
	{
		ID:          "beaches",
		Name:        "Beaches",
		Description: "Information about beach conditions and facilities",
	},
	{
		ID:          "HMO_insured_main",
		Name:        "HMO Insurance",
		Description: "Information about health insurance through HMOs",
	},
	{
		ID:          "childKi",
		Name:        "Child Development",
		Description: "Information about child development services",
	},
	{
		ID:          "childCheckup",
		Name:        "Child Checkups",
		Description: "Information about child medical checkup services",
	},
	{
		ID:          "serviceQuality",
		Name:        "Service Quality",
		Description: "Quality measurements, patient experience surveys, and service complaints across medical facilities",
	},
}

var byID = func() map[string]Subject {
	m := make(map[string]Subject, len(subjects))
	for _, s := range subjects {
		m[s.ID] = s
	}
	return m
}()

// All returns every subject in declaration order.
func All() []Subject {
	out := make([]Subject, len(subjects))
	copy(out, subjects)
	return out
}

// IDs returns the subject identifiers in declaration order.
func IDs() []string {
	ids := make([]string, len(subjects))
	for i, s := range subjects {
		ids[i] = s.ID
	}
	return ids
}

func Lookup(id string) (Subject, bool) {
	s, ok := byID[id]
	return s, ok
}

type InvalidSubjectError struct {
	Subject string
}

func (e *InvalidSubjectError) Error() string {
	return fmt.Sprintf("invalid subject %q. Must be one of: %s", e.Subject, strings.Join(IDs(), ", "))
}

// Validate checks the subject against the catalog before any network call.
func Validate(id string) error {
	if _, ok := byID[id]; !ok {
		return &InvalidSubjectError{Subject: id}
	}
	return nil
}
