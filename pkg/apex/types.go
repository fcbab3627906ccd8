package apex

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// --- Player (bridge) ---

type User struct {
	Global   Global   `json:"global"`
	Realtime Realtime `json:"realtime"`
	Stats    Stats    `json:"total"`
}

// UnmarshalJSON accepts the stats block under either "total" or "stats".
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	aux := struct {
		*plain
		Alt *Stats `json:"stats"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Alt != nil {
		u.Stats = *aux.Alt
	}
	return nil
}

type Global struct {
	Name               string     `json:"name"`
	UID                int64      `json:"uid"`
	Avatar             string     `json:"avatar"`
	Platform           string     `json:"platform"`
	Level              int        `json:"level"`
	LevelPrestige      int        `json:"levelPrestige"`
	ToNextLevelPercent int        `json:"toNextLevelPercent"`
	Rank               Rank       `json:"rank"`
	Arena              Rank       `json:"arena"`
	Bans               Bans       `json:"bans"`
	Battlepass         Battlepass `json:"battlepass"`
}

type Realtime struct {
	LobbyState     string `json:"lobbyState"`
	IsOnline       int    `json:"isOnline"`
	IsInGame       int    `json:"isInGame"`
	CanJoin        int    `json:"canJoin"`
	PartyFull      int    `json:"partyFull"`
	SelectedLegend string `json:"selectedLegend"`
	CurrentState   string `json:"currentState"`
}

type Battlepass struct {
	Level   string            `json:"level"`
	History BattlepassHistory `json:"history"`
}

type BattlepassHistory struct {
	Season1  int `json:"season1"`
	Season2  int `json:"season2"`
	Season3  int `json:"season3"`
	Season4  int `json:"season4"`
	Season5  int `json:"season5"`
	Season6  int `json:"season6"`
	Season7  int `json:"season7"`
	Season8  int `json:"season8"`
	Season9  int `json:"season9"`
	Season10 int `json:"season10"`
}

type Rank struct {
	RankScore    int    `json:"rankScore"`
	RankName     string `json:"rankName"`
	RankDivision int    `json:"rankDiv"`
	RankImg      string `json:"rankImg"`
	RankedSeason string `json:"rankedSeason"`
}

type Bans struct {
	IsActive         bool   `json:"isActive"`
	RemainingSeconds int    `json:"remainingSeconds"`
	LastBanReason    string `json:"last_banReason"`
}

// Stat is a named tracker value.
type Stat[V any] struct {
	Name  string `json:"name"`
	Value V      `json:"value"`
}

type Stats struct {
	BRKills      Stat[int]    `json:"kills"`
	BRDamage     Stat[int]    `json:"damage"`
	ArenasDamage Stat[int]    `json:"arenas_damage"`
	GamesPlayed  Stat[int]    `json:"games_played"`
	KD           Stat[string] `json:"kd"`
}

// --- Games ---

type Game struct {
	UID                    string     `json:"uid"`
	Name                   string     `json:"name"`
	LegendPlayed           string     `json:"legendPlayed"`
	GameMode               string     `json:"gameMode"`
	GameLengthSeconds      int        `json:"gameLengthSecs"`
	GameEndTimestamp       int64      `json:"gameEndTimestamp"`
	GameData               []GameData `json:"gameData"`
	EstimatedLevelProgress int        `json:"estimatedLevelProgress"`
	BRScoreChange          int        `json:"BRScoreChange"`
	BRScore                int        `json:"BRScore"`
	ArenasScoreChange      int        `json:"ArenasScoreChange"`
	ArenasScore            int        `json:"ArenasScore"`
	Cosmetics              Cosmetics  `json:"cosmetics"`
}

type Cosmetics struct {
	Pose        string `json:"pose"`
	Skin        string `json:"skin"`
	Frame       string `json:"frame"`
	Intro       string `json:"intro"`
	PoseRarity  string `json:"poseRarity"`
	SkinRarity  string `json:"skinRarity"`
	FrameRarity string `json:"frameRarity"`
	IntroRarity string `json:"introRarity"`
}

type GameData struct {
	Key   string  `json:"key"`
	Value int     `json:"value"`
	Name  *string `json:"name,omitempty"`
}

// --- Name to UID ---

type Profile struct {
	Name   string `json:"name"`
	UID    ID     `json:"uid"`
	PID    ID     `json:"pid"`
	Avatar string `json:"avatar"`
}

// ID is an account identifier. The API sends it as a JSON string from some
// endpoints and as a number from others; both decode to the same text.
type ID string

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// --- Map rotation ---

type MapRotation struct {
	BattleRoyale MapRotationData       `json:"battle_royale"`
	Arenas       MapRotationData       `json:"arenas"`
	Ranked       RankedMapRotationData `json:"ranked"`
	ArenasRanked MapRotationData       `json:"arenasRanked"`
}

type MapRotationData struct {
	Current MapRotationItem `json:"current"`
	Next    MapRotationItem `json:"next"`
}

type MapRotationItem struct {
	Start             int64  `json:"start"`
	End               int64  `json:"end"`
	ReadableDateStart string `json:"readableDate_start"`
	ReadableDateEnd   string `json:"readableDate_end"`
	Map               string `json:"map"`
	DurationInSeconds int    `json:"DurationInSecs"`
	DurationInMinutes int    `json:"DurationInMinutes"`
}

type RankedMapRotationData struct {
	Current RankedMapRotationItem `json:"current"`
	Next    RankedMapRotationItem `json:"next"`
}

type RankedMapRotationItem struct {
	Map string `json:"map"`
}
