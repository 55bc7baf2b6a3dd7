// Copyright (C) 2026  Pyver Authors
//
// SPDX-License-Identifier: Apache-2.0

package pep440_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pyver-dev/pyver/pkg/pep440"
)

func mustParseVersion(t *testing.T, str string) pep440.Version {
	t.Helper()
	ver, err := pep440.ParseVersion(str)
	require.NoError(t, err)
	require.NotNil(t, ver)
	return *ver
}

func parseAll(t *testing.T, strs ...string) []pep440.AnyVersion {
	t.Helper()
	ret := make([]pep440.AnyVersion, 0, len(strs))
	for _, str := range strs {
		ret = append(ret, pep440.Parse(str))
	}
	return ret
}
