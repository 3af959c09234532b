package validators

import (
	"context"

	"github.com/MKhiriev/go-patient-guard/models"
)

// Field names accepted by PatientValidator.Validate.
const (
	FieldName      = "name"
	FieldContact   = "contact"
	FieldDiagnosis = "diagnosis"
)

var patientFields = []string{FieldName, FieldContact, FieldDiagnosis}

// PatientValidator validates patient write requests. It accepts
// models.PatientInput and models.Patient in value or pointer form.
type PatientValidator struct{}

// NewPatientValidator constructs a PatientValidator and returns it as the
// Validator interface.
func NewPatientValidator() Validator {
	return &PatientValidator{}
}

// Validate checks the named fields in the given order, defaulting to name,
// contact and diagnosis. The first failure is returned as *ValidationError.
func (v *PatientValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PatientInput:
		return v.validateInput(ctx, value, fields...)
	case *models.PatientInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateInput(ctx, *value, fields...)
	case models.Patient:
		return v.validateInput(ctx, inputOf(value), fields...)
	case *models.Patient:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateInput(ctx, inputOf(*value), fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PatientValidator) validateInput(_ context.Context, input models.PatientInput, fields ...string) error {
	if len(fields) == 0 {
		fields = patientFields
	}

	for _, f := range fields {
		var (
			ok  bool
			msg string
		)
		switch f {
		case FieldName:
			ok, msg = ValidateName(input.Name)
		case FieldContact:
			ok, msg = ValidateContact(input.Contact)
		case FieldDiagnosis:
			ok, msg = ValidateDiagnosis(input.Diagnosis)
		default:
			return ErrUnknownField
		}
		if !ok {
			return &ValidationError{Field: f, Message: msg}
		}
	}

	return nil
}

func inputOf(p models.Patient) models.PatientInput {
	return models.PatientInput{Name: p.Name, Contact: p.Contact, Diagnosis: p.Diagnosis}
}
