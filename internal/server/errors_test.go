package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{&ErrValidation{Field: "body", Message: "invalid"}, http.StatusBadRequest},
		{&ErrUnknownSection{Section: "skills"}, http.StatusBadRequest},
		{&ErrResumeUnavailable{Cause: fmt.Errorf("no such file")}, http.StatusServiceUnavailable},
		{&ErrAnalyzerUnavailable{}, http.StatusNotImplemented},
		{fmt.Errorf("anything else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, HTTPStatus(tc.err), "error %v", tc.err)
	}
}

func TestErrResumeUnavailableUnwrap(t *testing.T) {
	cause := fmt.Errorf("no such file")
	err := &ErrResumeUnavailable{Cause: cause}
	assert.ErrorIs(t, err, cause)
}
