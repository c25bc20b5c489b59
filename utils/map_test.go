package utils

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
	assert.Nil(t, Map(nil, strconv.Itoa))
}

func TestMapErr(t *testing.T) {
	out, err := MapErr([]string{"1", "2"}, strconv.Atoi)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, out)

	_, err = MapErr([]string{"1", "nope"}, strconv.Atoi)
	assert.Error(t, err)

	out, err = MapErr(nil, func(s string) (int, error) { return 0, errors.New("never called") })
	assert.NoError(t, err)
	assert.Nil(t, out)
}
