package nes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseHeader() []byte {
	return []byte{'N', 'E', 'S', 0x1a, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
}

func TestLoadINES_Rejects(t *testing.T) {
	tests := []struct {
		name string
		rom  []byte
	}{
		{"empty", []byte{}},
		{"too short", []byte{'N', 'E', 'S', 0x1A, 0, 0, 0, 0, 0, 0}},
		{"wrong second byte", []byte{'N', 'O', 'S', 0x1A, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"wrong EOF byte", []byte{'N', 'E', 'S', ' ', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadINES(bytes.NewBuffer(tt.rom))
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

// TestLoadINES_HeaderFlags exercises one flags-byte bit per case against the
// field it controls, leaving every other header byte at its zero default.
func TestLoadINES_HeaderFlags(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(rom []byte) []byte
		wantFn  func(t *testing.T, c *Cartridge)
		wantErr func(t *testing.T, err error)
	}{
		{
			name:   "horizontal mirroring",
			mutate: func(rom []byte) []byte { rom[6] = unset(rom[6], flag6Mirror); return rom },
			wantFn: func(t *testing.T, c *Cartridge) { assert.Equal(t, horizontal, c.MirrorMode) },
		},
		{
			name:   "vertical mirroring",
			mutate: func(rom []byte) []byte { rom[6] = set(rom[6], flag6Mirror); return rom },
			wantFn: func(t *testing.T, c *Cartridge) { assert.Equal(t, vertical, c.MirrorMode) },
		},
		{
			name:   "battery-backed RAM present",
			mutate: func(rom []byte) []byte { rom[6] = set(rom[6], flag6SaveRAM); return rom },
			wantFn: func(t *testing.T, c *Cartridge) { assert.True(t, c.SaveRAM) },
		},
		{
			name:   "no battery-backed RAM",
			mutate: func(rom []byte) []byte { rom[6] = unset(rom[6], flag6SaveRAM); return rom },
			wantFn: func(t *testing.T, c *Cartridge) { assert.False(t, c.SaveRAM) },
		},
		{
			name: "512-byte trainer present",
			mutate: func(rom []byte) []byte {
				rom[6] = set(rom[6], flag6Trainer)
				return append(rom, make([]byte, trainerLen)...)
			},
			wantFn: func(t *testing.T, c *Cartridge) { assert.Len(t, c.Trainer, trainerLen) },
		},
		{
			name:   "no trainer",
			mutate: func(rom []byte) []byte { rom[6] = unset(rom[6], flag6Trainer); return rom },
			wantFn: func(t *testing.T, c *Cartridge) { assert.Len(t, c.Trainer, 0) },
		},
		{
			name:   "four-screen nametables",
			mutate: func(rom []byte) []byte { rom[6] = set(rom[6], flag6FourScreen); return rom },
			wantFn: func(t *testing.T, c *Cartridge) { assert.True(t, c.FourScreen) },
		},
		{
			name:   "no four-screen nametables",
			mutate: func(rom []byte) []byte { rom[6] = unset(rom[6], flag6FourScreen); return rom },
			wantFn: func(t *testing.T, c *Cartridge) { assert.False(t, c.FourScreen) },
		},
		{
			name: "mapper number spans both flag bytes",
			mutate: func(rom []byte) []byte {
				rom[6] = (rom[6] & 0x0F) | (byte(42&0x0F) << 4)
				rom[7] = (rom[7] & 0x0F) | byte(42&0xF0)
				return rom
			},
			wantErr: func(t *testing.T, err error) {
				var e *UnsupportedMapperError
				require.ErrorAs(t, err, &e)
				assert.EqualValues(t, 42, e.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom := append(tt.mutate(baseHeader()), make([]byte, prgUnit)...)
			got, err := LoadINES(bytes.NewBuffer(rom))
			if tt.wantErr != nil {
				tt.wantErr(t, err)
				return
			}
			require.NoError(t, err)
			tt.wantFn(t, got)
		})
	}
}

// TestLoadINES_MapperRange confirms every one-byte mapper id round-trips
// through the split low/high nibble encoding in flag bytes 6 and 7: the
// supported ids load with that id, and every other id is rejected with an
// UnsupportedMapperError carrying it.
func TestLoadINES_MapperRange(t *testing.T) {
	for i := 0; i < 256; i++ {
		m := byte(i)
		rom := baseHeader()
		rom[6] = (rom[6] & 0x0F) | ((m & 0x0F) << 4)
		rom[7] = (rom[7] & 0x0F) | (m & 0xF0)
		rom = append(rom, make([]byte, prgUnit)...)

		got, err := LoadINES(bytes.NewBuffer(rom))
		switch m {
		case 0, 2, 3:
			require.NoErrorf(t, err, "mapper %d", m)
			assert.Equalf(t, m, got.Mapper, "mapper %d round-trip", m)
		default:
			var e *UnsupportedMapperError
			require.ErrorAsf(t, err, &e, "mapper %d", m)
			assert.Equalf(t, m, e.ID, "mapper %d round-trip", m)
		}
	}
}

func set(v byte, mask byte) byte {
	return v | mask
}

func unset(v byte, mask byte) byte {
	return v &^ mask
}
