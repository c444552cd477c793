// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the value types exchanged between the clinote
// pipeline stages: templates, sections, structured notes, warnings,
// validation issues, and configuration.
package types

// SectionName identifies a canonical clinical note section. The display
// string is produced by String; raw heading spellings are mapped onto
// these values through the alias tables, never by comparing display
// strings directly.
type SectionName int

const (
	SectionSubjective SectionName = iota
	SectionObjective
	SectionAssessment
	SectionPlan
	SectionChiefComplaint
	SectionHPI
	SectionPMH
	SectionMedications
	SectionAllergies
	SectionROS
	SectionPhysicalExam
	SectionAdmissionDx
	SectionDischargeDx
	SectionHospitalCourse
	SectionFollowUp
	SectionDisposition
	SectionInstructions
	SectionNarrative
)

// sectionDisplay maps each SectionName to its canonical display string.
var sectionDisplay = map[SectionName]string{
	SectionSubjective:     "Subjective",
	SectionObjective:      "Objective",
	SectionAssessment:     "Assessment",
	SectionPlan:           "Plan",
	SectionChiefComplaint: "Chief Complaint",
	SectionHPI:            "HPI",
	SectionPMH:            "PMH",
	SectionMedications:    "Medications",
	SectionAllergies:      "Allergies",
	SectionROS:            "ROS",
	SectionPhysicalExam:   "Physical Exam",
	SectionAdmissionDx:    "Admission Dx",
	SectionDischargeDx:    "Discharge Dx",
	SectionHospitalCourse: "Hospital Course",
	SectionFollowUp:       "Follow-up",
	SectionDisposition:    "Disposition",
	SectionInstructions:   "Instructions",
	SectionNarrative:      "Narrative",
}

// String returns the canonical display spelling of the section.
func (s SectionName) String() string {
	if name, ok := sectionDisplay[s]; ok {
		return name
	}
	return "Narrative"
}

// AllSectionNames returns every canonical section in declaration order.
func AllSectionNames() []SectionName {
	names := make([]SectionName, 0, len(sectionDisplay))
	for s := SectionSubjective; s <= SectionNarrative; s++ {
		names = append(names, s)
	}
	return names
}

// ParseSectionName resolves a canonical section spelling (key-insensitive)
// to its SectionName. It accepts only canonical names; arbitrary aliases
// are the heading detector's concern.
func ParseSectionName(raw string) (SectionName, bool) {
	key := NormalizeKey(raw)
	for s, display := range sectionDisplay {
		if NormalizeKey(display) == key {
			return s, true
		}
	}
	return SectionNarrative, false
}
