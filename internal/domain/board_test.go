package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, lines ...string) Board {
	t.Helper()
	b, err := ParseBoard(lines...)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			require.Equal(t, Empty, b[r][c])
		}
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.ValidLocations())
	require.False(t, b.IsFull())
}

func TestIsValidLocation(t *testing.T) {
	b := NewBoard()
	require.False(t, b.IsValidLocation(-1), "negative column is never valid")
	require.False(t, b.IsValidLocation(Columns), "column past the edge is never valid")

	for i := 0; i < Rows; i++ {
		require.True(t, b.IsValidLocation(2))
		_, err := b.Drop(2, PlayerPiece)
		require.NoError(t, err)
	}
	require.False(t, b.IsValidLocation(2), "full column")
}

func TestNextOpenRow(t *testing.T) {
	t.Run("fills from the bottom", func(t *testing.T) {
		b := NewBoard()
		for want := 0; want < Rows; want++ {
			row, err := b.NextOpenRow(4)
			require.NoError(t, err)
			require.Equal(t, want, row)
			require.NoError(t, b.DropPiece(row, 4, AiPiece))
		}
	})

	t.Run("full column", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < Rows; i++ {
			_, err := b.Drop(0, PlayerPiece)
			require.NoError(t, err)
		}
		_, err := b.NextOpenRow(0)
		require.ErrorIs(t, err, ErrColumnFull)
		_, err = b.Drop(0, PlayerPiece)
		require.ErrorIs(t, err, ErrColumnFull)
	})

	t.Run("out of range", func(t *testing.T) {
		b := NewBoard()
		_, err := b.NextOpenRow(7)
		require.ErrorIs(t, err, ErrInvalidColumn)
		_, err = b.NextOpenRow(-3)
		require.ErrorIs(t, err, ErrInvalidColumn)
	})
}

func TestDropPieceBounds(t *testing.T) {
	b := NewBoard()
	require.ErrorIs(t, b.DropPiece(0, 9, PlayerPiece), ErrInvalidColumn)
	require.ErrorIs(t, b.DropPiece(6, 0, PlayerPiece), ErrInvalidRow)
	require.ErrorIs(t, b.DropPiece(-1, 0, PlayerPiece), ErrInvalidRow)
	require.Equal(t, NewBoard(), b, "rejected drops leave the board untouched")
}

// every column stays contiguous from row 0 after each drop
func TestDropKeepsColumnsContiguous(t *testing.T) {
	b := NewBoard()
	piece := PlayerPiece
	order := []int{3, 3, 2, 4, 0, 6, 3, 5, 1, 1, 6, 6, 0, 2, 4}
	for _, col := range order {
		row, err := b.NextOpenRow(col)
		require.NoError(t, err)
		require.NoError(t, b.DropPiece(row, col, piece))
		piece = piece.Opponent()

		for c := 0; c < Columns; c++ {
			seenEmpty := false
			for r := 0; r < Rows; r++ {
				if b[r][c] == Empty {
					seenEmpty = true
					continue
				}
				require.False(t, seenEmpty, "floating piece at row %d column %d", r, c)
			}
		}
	}
}

func TestValidLocationsSingleOpenColumn(t *testing.T) {
	b := mustParse(t,
		"OXOXO.O",
		"XOXOXXX",
		"OXOXOOO",
		"XOXOXXX",
		"OXOXOOO",
		"XOXOXXX",
	)
	require.Equal(t, []int{5}, b.ValidLocations())

	_, err := b.Drop(5, AiPiece)
	require.NoError(t, err)
	require.Empty(t, b.ValidLocations())
	require.True(t, b.IsFull())
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	_, err := b.Drop(3, PlayerPiece)
	require.NoError(t, err)

	c := b.Clone()
	_, err = c.Drop(3, AiPiece)
	require.NoError(t, err)

	require.Equal(t, Empty, b[1][3], "original must not see the copy's move")
	require.Equal(t, AiPiece, c[1][3])

	sim, row, err := SimulateMove(b, 3, AiPiece)
	require.NoError(t, err)
	require.Equal(t, 1, row)
	require.Equal(t, AiPiece, sim[1][3])
	require.Equal(t, Empty, b[1][3])
}

func TestSwapped(t *testing.T) {
	b := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"...O...",
		"..XXO..",
	)
	s := b.Swapped()
	require.Equal(t, AiPiece, s[0][2])
	require.Equal(t, PlayerPiece, s[0][4])
	require.Equal(t, PlayerPiece, s[1][3])
	require.Equal(t, Empty, s[5][0])
	require.Equal(t, b, s.Swapped())
}

func TestParseBoardRoundTrip(t *testing.T) {
	lines := []string{
		".......",
		".......",
		"...X...",
		"...O...",
		"..XOO..",
		".XOXXO.",
	}
	b := mustParse(t, lines...)
	require.Equal(t, PlayerPiece, b[0][1])
	require.Equal(t, PlayerPiece, b[3][3])

	want := ""
	for _, l := range lines {
		want += l + "\n"
	}
	require.Equal(t, want, b.String())

	_, err := ParseBoard("...")
	require.Error(t, err)
}
