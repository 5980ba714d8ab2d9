// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package check

import "errors"

// Status indicates whether the groups of a hook call can be hoisted and why not.
type Status uint8

//go:generate go tool stringer -type Status -linecomment
const (
	// HoistAllowed indicates all groups can be safely hoisted.
	HoistAllowed Status = iota // hoist

	// HoistBlockedNoInsertionPoint indicates the hook call is not a statement in a block.
	HoistBlockedNoInsertionPoint // ins

	// HoistBlockedAmbiguous indicates a name is bound by destructurings of two different objects.
	HoistBlockedAmbiguous // amb

	// HoistBlockedEscape indicates a default value, computed key or source object refers to a name
	// that is not yet defined above the hook call.
	HoistBlockedEscape // esc

	// HoistBlockedLocal indicates a hoisted name is also bound elsewhere in the callback.
	HoistBlockedLocal // loc

	// HoistBlockedScope indicates a hoisted name is visible or used in the enclosing scope.
	HoistBlockedScope // scp

	// HoistBlockedReserved indicates a hoisted name was introduced by an earlier hoist in the same scope.
	HoistBlockedReserved // rsv

	// HoistBlockedDuplicate indicates the merged pattern binds a name twice or loses one.
	HoistBlockedDuplicate // dup

	// HoistBlockedAssigned indicates a destructured name is reassigned in the callback,
	// which a const declaration does not allow.
	HoistBlockedAssigned // asg

	// HoistBlockedReadBeforeDeclaration indicates a destructured name is read in the callback
	// before it is declared.
	HoistBlockedReadBeforeDeclaration // rbd
)

// Hoistable indicates the groups can be hoisted.
func (i Status) Hoistable() bool { return i == HoistAllowed }

var (
	// ErrNoInsertionPoint is returned when the hook call is not a statement in a block.
	ErrNoInsertionPoint = errors.New("no insertion point for hoisted declaration")

	// ErrAmbiguousGroupCollision is returned when a name is bound from two different objects.
	ErrAmbiguousGroupCollision = errors.New("name bound from different objects")

	// ErrReferenceEscapesHoist is returned when a hoisted expression refers to a name defined later.
	ErrReferenceEscapesHoist = errors.New("reference escapes hoisted declaration")

	// ErrNameCollision is returned when a hoisted name collides with an existing binding.
	ErrNameCollision = errors.New("hoisted name collides with existing binding")

	// ErrDuplicateBindingName is returned when the merged pattern binds a name twice.
	ErrDuplicateBindingName = errors.New("duplicate binding in merged pattern")

	// ErrReassignedBinding is returned when a destructured name is assigned to.
	ErrReassignedBinding = errors.New("destructured name is reassigned")

	// ErrReadBeforeDeclaration is returned when a destructured name is read before its declaration.
	ErrReadBeforeDeclaration = errors.New("destructured name is read before its declaration")
)

// Err returns the error corresponding to a blocked status, or nil.
func (i Status) Err() error {
	switch i {
	case HoistAllowed:
		return nil

	case HoistBlockedNoInsertionPoint:
		return ErrNoInsertionPoint

	case HoistBlockedAmbiguous:
		return ErrAmbiguousGroupCollision

	case HoistBlockedEscape:
		return ErrReferenceEscapesHoist

	case HoistBlockedLocal, HoistBlockedScope, HoistBlockedReserved:
		return ErrNameCollision

	case HoistBlockedDuplicate:
		return ErrDuplicateBindingName

	case HoistBlockedAssigned:
		return ErrReassignedBinding

	case HoistBlockedReadBeforeDeclaration:
		return ErrReadBeforeDeclaration

	default:
		return errors.New(i.String())
	}
}
