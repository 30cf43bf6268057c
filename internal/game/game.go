// Package game defines the domain model shared between the wire protocol and
// the rendering core: teams, roles, tiles, clues, players, and the
// authoritative room snapshot pushed by the server.
package game

// Team identifies one of the two playing sides.
type Team string

const (
	TeamRed  Team = "red"
	TeamBlue Team = "blue"

	// TeamUndecided marks players that have not picked a side yet.
	// It never appears as a turn or tile owner.
	TeamUndecided Team = "undecided"
)

// Other returns the opposing team. Undecided has no opponent and is
// returned unchanged.
func (t Team) Other() Team {
	switch t {
	case TeamRed:
		return TeamBlue
	case TeamBlue:
		return TeamRed
	default:
		return t
	}
}

// Valid reports whether t is a playable team.
func (t Team) Valid() bool {
	return t == TeamRed || t == TeamBlue
}

// Role is the viewer's role within a room.
type Role string

const (
	RoleGuesser   Role = "guesser"
	RoleSpymaster Role = "spymaster"
)

// TileType is the ground-truth affiliation of a tile. It is hidden from
// guessers until the tile is flipped or the game ends.
type TileType string

const (
	TileRed     TileType = "red"
	TileBlue    TileType = "blue"
	TileNeutral TileType = "neutral"
	TileDeath   TileType = "death"

	// TileUnknown is never sent by the server. It is the projected display
	// type for tiles the viewer is not allowed to see.
	TileUnknown TileType = "unknown"
)

// Difficulty selects how much help the board gives guessers.
type Difficulty string

const (
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Mode selects between untimed and timed turns.
type Mode string

const (
	ModeCasual Mode = "casual"
	ModeTimed  Mode = "timed"
)

// Consensus selects how guesses resolve: any single teammate flips a tile,
// or the team must agree via proposals first.
type Consensus string

const (
	ConsensusSingle Consensus = "single"
	ConsensusAll    Consensus = "consensus"
)

// Pack names a word pack that can be toggled into the pool.
type Pack string

const (
	PackBase       Pack = "base"
	PackDuet       Pack = "duet"
	PackUndercover Pack = "undercover"
	PackCustom     Pack = "custom"
	PackNsfw       Pack = "nsfw"
)

// BoardSize is the side length of the square board.
const BoardSize = 5

// Tile is a single board cell as the authority describes it.
type Tile struct {
	Word    string   `json:"word"`
	Flipped bool     `json:"flipped"`
	Type    TileType `json:"type"`
}

// Board is the fixed 5x5 grid of tiles. Using array types makes a
// well-formed grid a property of the type rather than a runtime check.
type Board [BoardSize][BoardSize]Tile

// Player is one member of the room as included in every snapshot.
type Player struct {
	Nickname string `json:"nickname"`
	Team     Team   `json:"team"`
	Role     Role   `json:"role"`

	// GuessProposal is the word this player currently proposes to flip.
	// Only meaningful in consensus mode; nil otherwise.
	GuessProposal *string `json:"guessProposal"`
}

// Clue is the active clue for the team whose turn it is.
type Clue struct {
	Word  string    `json:"word"`
	Count ClueCount `json:"count"`
}
