package bigint_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/deepbluesnow/avro"
	"github.com/deepbluesnow/avro/bigint"
)

func mustType(t *testing.T, precision int, schema avro.Schema) bigint.Type {
	typ, err := bigint.New(precision, schema)
	require.NoError(t, err)

	return typ
}

func mustInt(t *testing.T, text string) *big.Int {
	value, ok := new(big.Int).SetString(text, 10)
	require.True(t, ok)

	return value
}

func TestBytes(t *testing.T) {
	typ := mustType(t, 60, avro.Schema{Kind: avro.Bytes})

	type TC struct {
		name string
		data []byte
		Mark error
	}

	tcs := []TC{
		{
			name: "0",
			data: []byte{0x00},
			Mark: oops.New("unexpected"),
		},
		{
			name: "1",
			data: []byte{0x01},
			Mark: oops.New("unexpected"),
		},
		{
			name: "-1",
			data: []byte{0xFF},
			Mark: oops.New("unexpected"),
		},
		{
			name: "127",
			data: []byte{0x7F},
			Mark: oops.New("unexpected"),
		},
		{
			name: "128",
			data: []byte{0x00, 0x80},
			Mark: oops.New("unexpected"),
		},
		{
			name: "-128",
			data: []byte{0x80},
			Mark: oops.New("unexpected"),
		},
		{
			name: "-129",
			data: []byte{0xFF, 0x7F},
			Mark: oops.New("unexpected"),
		},
		{
			name: "255",
			data: []byte{0x00, 0xFF},
			Mark: oops.New("unexpected"),
		},
		{
			name: "256",
			data: []byte{0x01, 0x00},
			Mark: oops.New("unexpected"),
		},
		{
			name: "-256",
			data: []byte{0xFF, 0x00},
			Mark: oops.New("unexpected"),
		},
		{
			name: "32767",
			data: []byte{0x7F, 0xFF},
			Mark: oops.New("unexpected"),
		},
		{
			name: "-32768",
			data: []byte{0x80, 0x00},
			Mark: oops.New("unexpected"),
		},
		{
			name: "9223372036854775807",
			data: []byte{
				0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "-9223372036854775808",
			data: []byte{
				0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "9223372036854775808",
			data: []byte{
				0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			value := mustInt(t, tc.name)

			t.Run("serialize", func(t *testing.T) {
				physical, err := typ.Serialize(value)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.data, physical, tc.Mark)
			})

			t.Run("deserialize", func(t *testing.T) {
				got, err := typ.Deserialize(tc.data)
				require.NoError(t, err, tc.Mark)
				require.Zero(t, value.Cmp(got), tc.Mark)
			})
		})
	}

	t.Run("malformed", func(t *testing.T) {
		for _, physical := range []any{[]byte{}, []byte(nil), "0xFF", 7} {
			_, err := typ.Deserialize(physical)
			require.Error(t, err)
			require.True(t, avro.ErrMalformedValue.Has(err))
		}
	})
}

func TestString(t *testing.T) {
	typ := mustType(t, 40, avro.Schema{Kind: avro.String})

	type TC struct {
		name string
		text string
		Mark error
	}

	tcs := []TC{
		{
			name: "0",
			text: "0",
			Mark: oops.New("unexpected"),
		},
		{
			name: "-1",
			text: "-1",
			Mark: oops.New("unexpected"),
		},
		{
			name: "42",
			text: "42",
			Mark: oops.New("unexpected"),
		},
		{
			name: "9223372036854775808",
			text: "9223372036854775808",
			Mark: oops.New("unexpected"),
		},
		{
			name: "123456789012345678901234567890123456789",
			text: "123456789012345678901234567890123456789",
			Mark: oops.New("unexpected"),
		},
		{
			name: "-123456789012345678901234567890123456789",
			text: "-123456789012345678901234567890123456789",
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			value := mustInt(t, tc.name)

			t.Run("serialize", func(t *testing.T) {
				physical, err := typ.Serialize(value)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.text, physical, tc.Mark)
			})

			t.Run("deserialize", func(t *testing.T) {
				got, err := typ.Deserialize(tc.text)
				require.NoError(t, err, tc.Mark)
				require.Zero(t, value.Cmp(got), tc.Mark)
			})
		})
	}

	t.Run("malformed", func(t *testing.T) {
		texts := []string{
			"",
			"12a3",
			" 12",
			"12 ",
			"1.5",
			"--1",
			"-",
			"+",
			"0x10",
		}

		for _, text := range texts {
			t.Run(fmt.Sprintf("%q", text), func(t *testing.T) {
				_, err := typ.Deserialize(text)
				require.Error(t, err)
				require.True(t, avro.ErrMalformedValue.Has(err))
			})
		}

		_, err := typ.Deserialize([]byte("12"))
		require.Error(t, err)
		require.True(t, avro.ErrMalformedValue.Has(err))
	})
}

func TestUnsupported(t *testing.T) {
	typ := mustType(t, 2, avro.Schema{Kind: avro.Fixed, Size: 1})

	t.Run("serialize", func(t *testing.T) {
		_, err := typ.Serialize(big.NewInt(1))
		require.Error(t, err)
		require.True(t, avro.ErrUnsupportedOperation.Has(err))
		require.Contains(t, err.Error(), "fixed")
		require.Contains(t, err.Error(), bigint.Name)
	})

	t.Run("deserialize", func(t *testing.T) {
		_, err := typ.Deserialize([]byte{0x01})
		require.Error(t, err)
		require.True(t, avro.ErrUnsupportedOperation.Has(err))
		require.Contains(t, err.Error(), "fixed")
		require.Contains(t, err.Error(), bigint.Name)
	})
}
