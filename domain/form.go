package domain

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
)

const (
	FormNameKey = "formName"

	AddFormName         = "addForm"
	ProductListFormName = "productListForm"

	DeleteKey  = "delete"
	OpenedKey  = "opened"
	CartAddKey = "cart-add"

	// GeneralErrorKey holds messages that do not belong to a single field.
	GeneralErrorKey = "_"
)

var (
	MessageNameAlreadyExists = "Name already exists"
	MessageUnknownError      = "An unknown error occured"
)

// FormAction is the closed set of operations a page form can request.
type FormAction int

const (
	FormActionAdd FormAction = iota + 1
	FormActionDelete
	FormActionOpen
	FormActionCartAdd
)

func (a FormAction) String() string {
	switch a {
	case FormActionAdd:
		return "add"
	case FormActionDelete:
		return "delete"
	case FormActionOpen:
		return "open"
	case FormActionCartAdd:
		return "cart-add"
	default:
		return "FormAction(" + strconv.Itoa(int(a)) + ")"
	}
}

// listKeys is the order in which the product list form's buttons are checked.
var listKeys = []struct {
	key    string
	action FormAction
}{
	{DeleteKey, FormActionDelete},
	{OpenedKey, FormActionOpen},
	{CartAddKey, FormActionCartAdd},
}

type FormSubmission struct {
	Action   FormAction
	TargetID int64
}

// ParseFormSubmission reads the formName field and, for the product list form, the
// first row key present. Any error returned here means the markup and the handler
// disagree; it is never a user input problem.
func ParseFormSubmission(values map[string]string, supported ...FormAction) (FormSubmission, error) {
	var sub FormSubmission

	switch name := values[FormNameKey]; name {
	case AddFormName:
		sub.Action = FormActionAdd
	case ProductListFormName:
		found := false
		for _, k := range listKeys {
			raw, ok := values[k.key]
			if !ok {
				continue
			}
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return FormSubmission{}, fmt.Errorf("%w: %s=%q", ErrInvalidID, k.key, raw)
			}
			sub.Action = k.action
			sub.TargetID = id
			found = true
			break
		}
		if !found {
			return FormSubmission{}, fmt.Errorf("%w: %s without a row action", ErrUnknownForm, name)
		}
	default:
		return FormSubmission{}, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}

	if !slices.Contains(supported, sub.Action) {
		return FormSubmission{}, fmt.Errorf("%w: %s is not handled by this route", ErrUnknownForm, sub.Action)
	}
	return sub, nil
}

// FieldErrors maps a form field name (or GeneralErrorKey) to a message.
type FieldErrors map[string]string

type FailureKind int

const (
	FailureValidation FailureKind = iota + 1
	FailureConflict
	FailureServer
)

// ActionFailure is the outcome of a form write that did not succeed but can be
// shown back to the user next to their input.
type ActionFailure struct {
	Kind   FailureKind
	Errors FieldErrors
}

func NewValidationFailure(errs FieldErrors) *ActionFailure {
	return &ActionFailure{Kind: FailureValidation, Errors: errs}
}

func NewConflictFailure(field, message string) *ActionFailure {
	return &ActionFailure{Kind: FailureConflict, Errors: FieldErrors{field: message}}
}

func NewServerFailure() *ActionFailure {
	return &ActionFailure{Kind: FailureServer, Errors: FieldErrors{GeneralErrorKey: MessageUnknownError}}
}

func (f *ActionFailure) Error() string {
	switch f.Kind {
	case FailureValidation:
		return fmt.Sprintf("validation failed: %v", map[string]string(f.Errors))
	case FailureConflict:
		return fmt.Sprintf("conflict: %v", map[string]string(f.Errors))
	default:
		return "unexpected store failure"
	}
}

func (f *ActionFailure) StatusCode() int {
	if f.Kind == FailureServer {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

// FailureFromError classifies a service error into one of the failure kinds.
// Anything that is not a known validation or conflict outcome becomes a server
// failure whose detail stays on the server.
func FailureFromError(err error) *ActionFailure {
	var failure *ActionFailure
	if errors.As(err, &failure) {
		return failure
	}
	if errors.Is(err, ErrProductNameExists) {
		return NewConflictFailure("name", MessageNameAlreadyExists)
	}
	return NewServerFailure()
}

// ActionResponse is what a page receives after a failed write: the messages and
// the raw values that were submitted, so the form can be shown again pre-filled.
type ActionResponse struct {
	Errors FieldErrors       `json:"errors"`
	Values map[string]string `json:"values"`
}

func EmptyActionResponse() ActionResponse {
	return ActionResponse{Errors: FieldErrors{}, Values: map[string]string{}}
}
