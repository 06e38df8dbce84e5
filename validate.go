package kmedoids

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// validateData checks that data is a well-formed 2-D matrix with no NaN
// entries and returns its dimensions. Every row must have the same length
// as the first. Runs before any distance computation; on failure nothing
// else happens.
func validateData(data [][]float64) (n, dims int, err error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("%w: data must contain at least one point", ErrInvalidInput)
	}

	n = len(data)
	dims = len(data[0])
	for i, row := range data {
		if len(row) != dims {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, want %d (data must be a well-formed 2-D matrix)",
				ErrInvalidInput, i, len(row), dims)
		}
		if floats.HasNaN(row) {
			return 0, 0, fmt.Errorf("%w: row %d contains NaN values (handle missing data before clustering)",
				ErrInvalidInput, i)
		}
	}

	return n, dims, nil
}

// validateConfig checks k against the data size and the remaining cfg
// fields. Called after applyDefaults.
func validateConfig(cfg *Config, n, k int) error {
	if k <= 0 {
		return fmt.Errorf("%w: k must be a positive integer, got %d", ErrInvalidInput, k)
	}
	if k > n {
		return fmt.Errorf("%w: k = %d exceeds the number of data points n = %d", ErrInvalidInput, k, n)
	}
	if cfg.MaxIterations < 0 {
		return fmt.Errorf("%w: MaxIterations must be >= 0 (0 means unbounded), got %d", ErrInvalidInput, cfg.MaxIterations)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", ErrInvalidInput, cfg.Workers)
	}
	if cfg.InitialMedoids != nil {
		if len(cfg.InitialMedoids) != k {
			return fmt.Errorf("%w: InitialMedoids has %d entries, want k = %d", ErrInvalidInput, len(cfg.InitialMedoids), k)
		}
		seen := make([]bool, n)
		for _, m := range cfg.InitialMedoids {
			if m < 0 || m >= n {
				return fmt.Errorf("%w: InitialMedoids entry %d is out of range [0, %d)", ErrInvalidInput, m, n)
			}
			if seen[m] {
				return fmt.Errorf("%w: InitialMedoids contains duplicate index %d", ErrInvalidInput, m)
			}
			seen[m] = true
		}
	}
	return nil
}
