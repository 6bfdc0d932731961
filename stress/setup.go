// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"time"

	"github.com/bitmark-inc/avllist/fault"
)

// default values for a run
const (
	DefaultSeed         = 1
	DefaultOperations   = 10000
	DefaultInitialSize  = 0
	DefaultSamples      = 1
	DefaultCheckEvery   = 1000
	DefaultInsertWeight = 5
	DefaultRemoveWeight = 3
	DefaultSetWeight    = 2
)

// Configuration - parameters of a run, also read from the "stress"
// table of a configuration file
type Configuration struct {
	Seed         int64 `gluamapper:"seed" json:"seed" yaml:"seed"`
	Operations   int   `gluamapper:"operations" json:"operations" yaml:"operations"`
	InitialSize  int   `gluamapper:"initial_size" json:"initial_size" yaml:"initial_size"`
	Samples      int   `gluamapper:"samples" json:"samples" yaml:"samples"`
	CheckEvery   int   `gluamapper:"check_every" json:"check_every" yaml:"check_every"`
	InsertWeight int   `gluamapper:"insert_weight" json:"insert_weight" yaml:"insert_weight"`
	RemoveWeight int   `gluamapper:"remove_weight" json:"remove_weight" yaml:"remove_weight"`
	SetWeight    int   `gluamapper:"set_weight" json:"set_weight" yaml:"set_weight"`
}

// DefaultConfiguration - configuration used when nothing is specified
func DefaultConfiguration() Configuration {
	return Configuration{
		Seed:         DefaultSeed,
		Operations:   DefaultOperations,
		InitialSize:  DefaultInitialSize,
		Samples:      DefaultSamples,
		CheckEvery:   DefaultCheckEvery,
		InsertWeight: DefaultInsertWeight,
		RemoveWeight: DefaultRemoveWeight,
		SetWeight:    DefaultSetWeight,
	}
}

// Validate - check the counts and weights
func (c Configuration) Validate() error {
	if c.Operations < 0 || c.InitialSize < 0 || c.Samples < 0 || c.CheckEvery < 0 {
		return fault.ErrInvalidCount
	}
	if c.InsertWeight < 0 || c.RemoveWeight < 0 || c.SetWeight < 0 {
		return fault.ErrInvalidWeight
	}
	// inserts are needed to get anything into the list
	if 0 == c.InsertWeight {
		return fault.ErrInvalidWeight
	}
	return nil
}

// Op - the kind of a random operation
type Op int

// operation kinds
const (
	OpInsert Op = iota
	OpRemove
	OpSet
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpSet:
		return "set"
	default:
		return "unknown"
	}
}

// Result - summary of a run
type Result struct {
	Operations  int           `json:"operations" yaml:"operations"`
	Inserts     int           `json:"inserts" yaml:"inserts"`
	Removes     int           `json:"removes" yaml:"removes"`
	Sets        int           `json:"sets" yaml:"sets"`
	Checks      int           `json:"checks" yaml:"checks"`
	FinalLength int           `json:"final_length" yaml:"final_length"`
	MaxHeight   int           `json:"max_height" yaml:"max_height"`
	Elapsed     time.Duration `json:"-" yaml:"-"`
}
