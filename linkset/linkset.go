// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Package linkset provide a set of absolute URL, where each URL is stored
// only once.
package linkset

import (
	"encoding/json"
	"slices"
)

// Set of absolute URL.
// Two links are equal if their resolved string are equal.
type Set map[string]struct{}

// New create new Set that contains the list of links.
func New(links ...string) (set Set) {
	set = make(Set, len(links))
	for _, link := range links {
		set[link] = struct{}{}
	}
	return set
}

// Add the link into set.
// It return true if the link is new.
func (set Set) Add(link string) (isNew bool) {
	_, ok := set[link]
	if ok {
		return false
	}
	set[link] = struct{}{}
	return true
}

// Has return true if link exist in the set.
func (set Set) Has(link string) (ok bool) {
	_, ok = set[link]
	return ok
}

// Len return the number of links in the set.
func (set Set) Len() int {
	return len(set)
}

// Merge all links from other into set.
func (set Set) Merge(other Set) {
	for link := range other {
		set[link] = struct{}{}
	}
}

// Slice return the links as sorted slice.
func (set Set) Slice() (list []string) {
	list = make([]string, 0, len(set))
	for link := range set {
		list = append(list, link)
	}
	slices.Sort(list)
	return list
}

// MarshalJSON encode the set as sorted array of string.
func (set Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(set.Slice())
}

// UnmarshalJSON decode array of string into set.
func (set *Set) UnmarshalJSON(raw []byte) (err error) {
	var list []string
	err = json.Unmarshal(raw, &list)
	if err != nil {
		return err
	}
	*set = New(list...)
	return nil
}
