// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsp

import "strconv"

// Contents is the terminal classification of a region of a [Hull],
// as returned by [Hull.Classify]. Valid contents are the negative
// codes [Empty] through [CurrentDown].
type Contents int32

const (
	Empty       Contents = -1
	Solid       Contents = -2
	Water       Contents = -3
	Slime       Contents = -4
	Lava        Contents = -5
	Sky         Contents = -6
	Origin      Contents = -7 // removed at map compile time
	Clip        Contents = -8 // changed to Solid at map compile time
	Current0    Contents = -9
	Current90   Contents = -10
	Current180  Contents = -11
	Current270  Contents = -12
	CurrentUp   Contents = -13
	CurrentDown Contents = -14
)

var contentsNames = [...]string{
	"empty", "solid", "water", "slime", "lava", "sky", "origin", "clip",
	"current_0", "current_90", "current_180", "current_270", "current_up", "current_down",
}

// IsValid returns whether c is one of the defined content codes.
func (c Contents) IsValid() bool {
	return c <= Empty && c >= CurrentDown
}

// IsLiquid returns whether c is water, slime or lava.
func (c Contents) IsLiquid() bool {
	return c <= Water && c >= Lava
}

// IsCurrent returns whether c is one of the water current contents.
func (c Contents) IsCurrent() bool {
	return c <= Current0 && c >= CurrentDown
}

func (c Contents) String() string {
	if !c.IsValid() {
		return "Contents(" + strconv.Itoa(int(c)) + ")"
	}
	return contentsNames[-c-1]
}
