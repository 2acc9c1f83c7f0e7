package domain

import (
	"fmt"
	"strings"
)

// TagSet is the ordered list of element names extracted from every document.
type TagSet []string

// Named tag sets.
const (
	// TagSetDefault is the subset used to build the pretraining corpus.
	TagSetDefault = "default"

	// TagSetFull is every primary tag of a ClinicalTrials.gov record.
	TagSetFull = "full"
)

// DefaultTagSet returns the tags extracted unless configured otherwise.
func DefaultTagSet() TagSet {
	return TagSet{
		"nct_id",
		"link_text",
		"url",
		"id_info",
		"brief_title",
		"sponsors",
		"brief_summary",
		"detailed_description",
		"primary_purpose",
		"intervention",
		"eligibility",
		"gender",
		"minimum_age",
		"maximum_age",
		"healthy_volunteers",
		"keyword",
		"condition_browse",
	}
}

// FullTagSet returns the primary tags of a TREC 2023 clinical trial record.
func FullTagSet() TagSet {
	return TagSet{
		"required_header",
		"id_info",
		"brief_title",
		"acronym",
		"official_title",
		"sponsors",
		"source",
		"oversight_info",
		"brief_summary",
		"detailed_description",
		"overall_status",
		"last_known_status",
		"why_stopped",
		"start_date",
		"completion_date",
		"primary_completion_date",
		"phase",
		"study_type",
		"has_expanded_access",
		"expanded_access_info",
		"study_design_info",
		"target_duration",
		"primary_outcome",
		"secondary_outcome",
		"other_outcome",
		"number_of_arms",
		"number_of_groups",
		"enrollment",
		"condition",
		"arm_group",
		"intervention",
		"biospec_retention",
		"biospec_descr",
		"eligibility",
		"overall_official",
		"overall_contact",
		"overall_contact_backup",
		"location",
		"location_countries",
		"removed_countries",
		"link",
		"reference",
		"results_reference",
		"verification_date",
		"study_first_submitted",
		"study_first_submitted_qc",
		"study_first_posted",
		"results_first_submitted",
		"results_first_submitted_qc",
		"results_first_posted",
		"disposition_first_submitted",
		"disposition_first_submitted_qc",
		"disposition_first_posted",
		"last_update_submitted",
		"last_update_submitted_qc",
		"last_update_posted",
		"responsible_party",
		"keyword",
		"condition_browse",
		"intervention_browse",
		"patient_data",
		"study_docs",
		"provided_document_section",
		"pending_results",
		"clinical_results",
	}
}

// LookupTagSet returns the named tag set.
func LookupTagSet(name string) (TagSet, error) {
	switch name {
	case "", TagSetDefault:
		return DefaultTagSet(), nil
	case TagSetFull:
		return FullTagSet(), nil
	default:
		return nil, fmt.Errorf("%w: tag set %q", ErrUnsupportedType, name)
	}
}

// Validate checks the tag set is non-empty with unique, non-blank names.
func (t TagSet) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: tag set is empty", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(t))
	for _, tag := range t {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: blank tag name", ErrInvalidInput)
		}
		if _, dup := seen[tag]; dup {
			return fmt.Errorf("%w: duplicate tag %q", ErrInvalidInput, tag)
		}
		seen[tag] = struct{}{}
	}
	return nil
}
