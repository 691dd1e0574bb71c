package result_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/todoapi/result"
)

var errBoom = errors.New("boom")

func TestResult_Arms(t *testing.T) {
	testCases := map[string]struct {
		res     result.Result[error, []string]
		expOK   bool
		expVal  []string
		expErr  error
		expText string
	}{
		"success": {
			res:     result.Success[error]([]string{"a", "b"}),
			expOK:   true,
			expVal:  []string{"a", "b"},
			expText: "Success([a b])",
		},
		"failure": {
			res:     result.Failure[error, []string](errBoom),
			expErr:  errBoom,
			expText: "Failure(boom)",
		},
		"zeroValue": {
			res:     result.Result[error, []string]{},
			expText: "Failure(<nil>)",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			if tc.res.IsSuccess() != tc.expOK {
				t.Errorf("exp IsSuccess %t, got %t", tc.expOK, tc.res.IsSuccess())
			}

			val, ok := tc.res.Value()
			if ok != tc.expOK {
				t.Errorf("exp value arm present %t, got %t", tc.expOK, ok)
			}
			if diff := cmp.Diff(tc.expVal, val); diff != "" {
				t.Errorf("value mismatch (-exp +got):\n%s", diff)
			}

			err, ok := tc.res.Err()
			if ok == tc.expOK {
				t.Errorf("exp error arm present %t, got %t", !tc.expOK, ok)
			}
			if !errors.Is(err, tc.expErr) {
				t.Errorf("exp err %v, got %v", tc.expErr, err)
			}

			if got := tc.res.String(); got != tc.expText {
				t.Errorf("exp String %q, got %q", tc.expText, got)
			}
		})
	}
}

func TestResult_Match(t *testing.T) {
	var gotErr, gotVal int

	result.Success[error](7).Match(
		func(error) { gotErr++ },
		func(v int) { gotVal += v },
	)
	result.Failure[error, int](errBoom).Match(
		func(error) { gotErr++ },
		func(v int) { gotVal += v },
	)
	result.Success[error](1).Match(func(error) { gotErr++ }, nil)

	if gotErr != 1 || gotVal != 7 {
		t.Errorf("exp 1 error and value 7, got %d errors and value %d", gotErr, gotVal)
	}
}
