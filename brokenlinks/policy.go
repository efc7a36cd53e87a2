// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package brokenlinks

import (
	"fmt"
	"net/http"
)

// Policy define which HTTP status code from probing is reported as broken.
type Policy int

// List of Policy.
const (
	// PolicyNotFound report only the link that return 404.
	PolicyNotFound Policy = iota

	// PolicyNotOK report any link that does not return 200.
	PolicyNotOK
)

// List of policy name.
const (
	PolicyNameNotFound = `notfound`
	PolicyNameNotOK    = `notok`
)

// ParsePolicy return the Policy by its name.
// Empty name return PolicyNotFound.
func ParsePolicy(name string) (policy Policy, err error) {
	switch name {
	case ``, PolicyNameNotFound:
		return PolicyNotFound, nil
	case PolicyNameNotOK:
		return PolicyNotOK, nil
	}
	return PolicyNotFound, fmt.Errorf(`unknown policy %q`, name)
}

// String return the name of policy.
func (policy Policy) String() string {
	if policy == PolicyNotOK {
		return PolicyNameNotOK
	}
	return PolicyNameNotFound
}

// isBroken return true if the HTTP status code is broken under policy.
func (policy Policy) isBroken(code int) bool {
	if policy == PolicyNotOK {
		return code != http.StatusOK
	}
	return code == http.StatusNotFound
}
