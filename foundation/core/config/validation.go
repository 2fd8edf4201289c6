// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements rule-based validation of configuration values:
//              required keys, expected types, numeric and length bounds,
//              and defaults for absent keys.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-11
// Modified: 2025-08-11
//
// Change History:
// - 2025-08-11 v0.1.0: Initial implementation of validation

package config

import (
	"fmt"
	"sort"
	"time"
)

// ValidationRule constrains a single configuration key.
type ValidationRule struct {
	Required bool        // the key must hold a value
	Type     string      // "string", "int", "bool", "duration", or "[]string"
	Min      interface{} // minimum value for numbers, minimum length for strings and slices
	Max      interface{} // maximum value for numbers, maximum length for strings and slices
	Default  interface{} // stored when the key is absent
}

// ValidationRules maps configuration keys to their rules.
type ValidationRules map[string]ValidationRule

// ValidationResult reports the outcome of a Validate call.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate checks the configuration against the rules. Absent keys
// receive their rule defaults, and whole-number floats are stored back
// as integers for "int" rules, so Validate may mutate the configuration.
// Errors come out in sorted key order.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true, Errors: make([]string, 0)}
	for _, key := range keys {
		if err := c.checkRule(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

// checkRule validates one key. The caller holds the write lock.
func (c *Config) checkRule(key string, rule ValidationRule) error {
	value, ok := c.values[key]
	if !ok || value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		if rule.Default != nil {
			c.values[key] = rule.Default
		}
		return nil
	}

	if rule.Type != "" {
		if err := c.checkType(key, value, rule.Type); err != nil {
			return err
		}
		// the type check may have stored a coerced value
		value = c.values[key]
	}

	if rule.Min != nil {
		if err := checkBound(key, value, rule.Min, true); err != nil {
			return err
		}
	}
	if rule.Max != nil {
		if err := checkBound(key, value, rule.Max, false); err != nil {
			return err
		}
	}
	return nil
}

// checkType verifies the value against the rule's type name, coercing
// where the file format is looser than the rule: YAML numbers may
// arrive as whole floats for "int" rules, and list items are stringified
// for "[]string" rules.
func (c *Config) checkType(key string, value interface{}, want string) error {
	switch want {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}

	case "int":
		switch v := value.(type) {
		case int, int8, int16, int32, int64:
		case float64:
			if v != float64(int64(v)) {
				return fmt.Errorf("field '%s' must be an integer, got float with decimal places", key)
			}
			c.values[key] = int64(v)
		default:
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}

	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}

	case "duration":
		switch v := value.(type) {
		case time.Duration:
		case string:
			if _, err := time.ParseDuration(v); err != nil {
				return fmt.Errorf("field '%s' must be a valid duration string, got '%v'", key, value)
			}
		default:
			return fmt.Errorf("field '%s' must be a duration, got %T", key, value)
		}

	case "[]string":
		switch v := value.(type) {
		case []string:
		case []interface{}:
			items := make([]string, len(v))
			for i, item := range v {
				items[i] = fmt.Sprintf("%v", item)
			}
			c.values[key] = items
		default:
			return fmt.Errorf("field '%s' must be a slice of strings, got %T", key, value)
		}

	default:
		return fmt.Errorf("unknown validation type: %s", want)
	}
	return nil
}

// checkBound compares a value against one rule bound. Numbers compare
// by value, strings and slices by length. Values outside those kinds
// pass unchecked.
func checkBound(key string, value, limit interface{}, isMin bool) error {
	noun := "value"
	measured, isFloat, ok := measure(value)
	if !ok {
		length, lengthOK := lengthOf(value)
		if !lengthOK {
			return nil
		}
		noun = "length"
		measured, isFloat = float64(length), false
	}

	relation := "greater than maximum"
	if isMin {
		relation = "less than minimum"
	}

	if isFloat {
		bound, ok := limitAsFloat(limit)
		if !ok {
			return nil
		}
		if (isMin && measured < bound) || (!isMin && measured > bound) {
			return fmt.Errorf("field '%s' value %g is %s %g", key, measured, relation, bound)
		}
		return nil
	}

	bound, ok := limitAsInt(limit)
	if !ok {
		return nil
	}
	v := int64(measured)
	if (isMin && v < bound) || (!isMin && v > bound) {
		return fmt.Errorf("field '%s' %s %d is %s %d", key, noun, v, relation, bound)
	}
	return nil
}

// measure maps a numeric value to float64 and reports whether the
// original was a float.
func measure(value interface{}) (f float64, isFloat, ok bool) {
	switch v := value.(type) {
	case int:
		return float64(v), false, true
	case int8:
		return float64(v), false, true
	case int16:
		return float64(v), false, true
	case int32:
		return float64(v), false, true
	case int64:
		return float64(v), false, true
	case float32:
		return float64(v), true, true
	case float64:
		return v, true, true
	}
	return 0, false, false
}

// lengthOf returns the length of a string or slice value.
func lengthOf(value interface{}) (int, bool) {
	switch v := value.(type) {
	case string:
		return len(v), true
	case []string:
		return len(v), true
	case []interface{}:
		return len(v), true
	}
	return 0, false
}

// limitAsInt reads a rule bound as int64. Whole floats are accepted.
func limitAsInt(limit interface{}) (int64, bool) {
	f, _, ok := measure(limit)
	if !ok {
		return 0, false
	}
	if f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// limitAsFloat reads a rule bound as float64.
func limitAsFloat(limit interface{}) (float64, bool) {
	f, _, ok := measure(limit)
	return f, ok
}
