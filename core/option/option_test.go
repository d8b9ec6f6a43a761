package option_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/cssval/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOptionMaybe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.option")
	defer teardown()
	//
	var y1, y2, y3 any
	x := option.Something(42)
	y1, _ = x.Match(option.Maybe{
		option.None: 7,
		option.Some: x.Unwrap() + 1,
	})
	//
	x = option.Nothing[int]()
	y2, _ = x.Match(option.Maybe{
		option.None: "No Value",
		option.Some: stringify,
	})
	//
	x = option.Something(42)
	y3, _ = x.Match(option.Maybe{
		option.None:  "No Value",
		option.Some:  nonsense,
		option.Error: stringify,
	})
	//
	t.Logf("y1 = %d, y2 = %s, y3 = %v", y1, y2, y3)
	if y1.(int) != 43 {
		t.Errorf("expected Something(42) to match to 43, is %d", y1)
	}
	if y2.(string) != "No Value" {
		t.Errorf("expected Nothing to match to No Value, is %v", y2)
	}
	if y3 != "Value = 42" {
		t.Errorf("expected Something(42) to match to Value = 42, is %v", y3)
	}
}

func TestOptionOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.option")
	defer teardown()
	//
	x := option.Something("hey")
	y1, _ := x.Match(option.Of{
		option.None: 0,
		"hey":       99,
		option.Some: 1,
	})
	if y1.(int) != 99 {
		t.Errorf("expected Something(hey) to match to 99, is %d", y1)
	}
	x = option.Something("ho")
	y2, _ := x.Match(option.Of{
		option.None: 0,
		"hey":       99,
		option.Some: 1,
	})
	if y2.(int) != 1 {
		t.Errorf("expected Something(ho) to fall back to Some, is %d", y2)
	}
}

func TestOptionUnset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.option")
	defer teardown()
	//
	x := option.Nothing[string]()
	_, err := x.Match(option.Of{
		"hey": 99,
	})
	if err != option.ErrCannotMatchUnsetValue {
		t.Errorf("expected unset value not to match, err = %v", err)
	}
	if _, err = option.Match(x, 5); err != option.ErrNoSuchMatchPattern {
		t.Errorf("expected illegal pattern to be rejected, err = %v", err)
	}
}

func TestOptionFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.option")
	defer teardown()
	//
	x := option.Something(1)
	_, err := x.Match(option.Of{
		option.None:  7,
		1:            option.Fail(errors.New("Fail")),
		option.Some:  x.Unwrap(),
		option.Error: option.Fail(errors.New("Caught Fail")),
	})
	//
	if err == nil {
		t.Fatalf("expected Something(1) to match to an error, hasn't")
	}
	if err.Error() != "Caught Fail" {
		t.Errorf("expected Something(1) error to be caught, isn't")
	}
}

func TestOptionMatchAs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.option")
	defer teardown()
	//
	x := option.Something(3)
	s, err := option.MatchAs[string](x, option.Maybe{
		option.None: "None",
		option.Some: stringify,
	})
	if err != nil || s != "Value = 3" {
		t.Errorf("expected 'Value = 3', have %q (err = %v)", s, err)
	}
	_, err = option.MatchAs[int](x, option.Maybe{
		option.Some: "not a number",
	})
	if err == nil {
		t.Errorf("expected type mismatch of match result to be reported")
	}
}

// ---------------------------------------------------------------------------

func nonsense(x any) (any, error) {
	return nil, errors.New("ERROR")
}

func stringify(x any) (any, error) {
	return fmt.Sprintf("Value = %v", x), nil
}
