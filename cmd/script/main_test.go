package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_newRootCmd(t *testing.T) {
	root := newRootCmd()

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.ElementsMatch(t, []string{"seed", "simulate", "rebalance", "history"}, names)

	seed, _, err := root.Find([]string{"seed", "stocks"})
	require.NoError(t, err)
	require.NotNil(t, seed.Flags().Lookup("csv-path"))

	rebalance, _, err := root.Find([]string{"rebalance"})
	require.NoError(t, err)
	require.Equal(t, "false", rebalance.Flags().Lookup("confirm").DefValue)
}
