package usecase

import "errors"

var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
	ErrStudentProfileNotFound = errors.New("student profile not found")
	ErrMentorNotFound         = errors.New("mentor not found")
	ErrOpportunityNotFound    = errors.New("opportunity not found")
	ErrOpportunityClosed      = errors.New("opportunity is not accepting applications")
	ErrMentorPopulation       = errors.New("failed to load mentor population")
	ErrNoPublicationsURL      = errors.New("mentor has no publications url")
	ErrIngestBusy             = errors.New("trend ingest is busy")
	ErrIngestUnavailable      = errors.New("trend ingest is not running")
)
