// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

// DefaultTemplate is the commented clinote.yaml written by `clinote init`.
const DefaultTemplate = `# clinote configuration
# Customize section orders, heading aliases, and bundle delimiters.

formats:
  soap:
    section_order: [Subjective, Objective, Assessment, Plan]
  hp:
    section_order:
      - Chief Complaint
      - HPI
      - PMH
      - Medications
      - Allergies
      - ROS
      - Physical Exam
      - Assessment
      - Plan
  discharge:
    section_order:
      - Admission Dx
      - Discharge Dx
      - Hospital Course
      - Medications
      - Follow-up
      - Disposition
      - Instructions

# Map variant spellings to canonical headings.
heading_aliases:
  Hx: PMH
  Dx: Assessment

# Apply looser heading matching when no headings are detected.
enable_fallback_heuristics: true

bundle:
  mode_default: auto
  delimiters:
    - "----- NOTE -----"
    - "=== VISIT ==="

csv:
  layout: wide

glob_default: "*.txt"
`
