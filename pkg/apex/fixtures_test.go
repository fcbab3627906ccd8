package apex

const userJSON = `{
  "global": {
    "name": "ExampleUser",
    "uid": 123,
    "avatar": "https://example.com/a.png",
    "platform": "PC",
    "level": 512,
    "levelPrestige": 1,
    "toNextLevelPercent": 42,
    "rank": {"rankScore": 10500, "rankName": "Diamond", "rankDiv": 2, "rankImg": "d.png", "rankedSeason": "season18_split_1"},
    "arena": {"rankScore": 0, "rankName": "Unranked", "rankDiv": 0, "rankImg": "u.png", "rankedSeason": "arenas17_split_1"},
    "bans": {"isActive": false, "remainingSeconds": 0, "last_banReason": "NONE"},
    "battlepass": {"level": "110", "history": {"season1": 1, "season2": 2, "season3": 3, "season4": 4, "season5": 5, "season6": 6, "season7": 7, "season8": 8, "season9": 9, "season10": 10}}
  },
  "realtime": {"lobbyState": "open", "isOnline": 1, "isInGame": 0, "canJoin": 1, "partyFull": 0, "selectedLegend": "Wraith", "currentState": "inLobby"},
  "total": {
    "kills": {"name": "BR Kills", "value": 9001},
    "damage": {"name": "BR Damage", "value": 123456},
    "arenas_damage": {"name": "Arenas Damage", "value": 77},
    "games_played": {"name": "Games Played", "value": 1500},
    "kd": {"name": "KD", "value": "3.21"}
  }
}`

const gamesJSON = `[
  {
    "uid": "123",
    "name": "ExampleUser",
    "legendPlayed": "Bloodhound",
    "gameMode": "BATTLE_ROYALE",
    "gameLengthSecs": 1200,
    "gameEndTimestamp": 1700000000,
    "gameData": [{"key": "kills", "value": 7, "name": "BR Kills"}, {"key": "damage", "value": 1800}],
    "estimatedLevelProgress": 12,
    "BRScoreChange": 45,
    "BRScore": 10545,
    "ArenasScoreChange": 0,
    "ArenasScore": 0,
    "cosmetics": {"pose": "p", "skin": "s", "frame": "f", "intro": "i", "poseRarity": "Rare", "skinRarity": "Epic", "frameRarity": "Common", "introRarity": "Legendary"}
  }
]`

const profileJSON = `{"name": "ExampleUser", "uid": "123", "pid": "456", "avatar": "https://example.com/a.png"}`

const mapRotationJSON = `{
  "battle_royale": {
    "current": {"start": 1700000000, "end": 1700005400, "readableDate_start": "2023-11-14 22:13:20", "readableDate_end": "2023-11-14 23:43:20", "map": "World's Edge", "DurationInSecs": 5400, "DurationInMinutes": 90},
    "next": {"start": 1700005400, "end": 1700010800, "readableDate_start": "2023-11-14 23:43:20", "readableDate_end": "2023-11-15 01:13:20", "map": "Olympus", "DurationInSecs": 5400, "DurationInMinutes": 90}
  },
  "arenas": {
    "current": {"start": 1, "end": 2, "readableDate_start": "a", "readableDate_end": "b", "map": "Phase Runner", "DurationInSecs": 900, "DurationInMinutes": 15},
    "next": {"start": 2, "end": 3, "readableDate_start": "b", "readableDate_end": "c", "map": "Overflow", "DurationInSecs": 900, "DurationInMinutes": 15}
  },
  "ranked": {"current": {"map": "Storm Point"}, "next": {"map": "Broken Moon"}},
  "arenasRanked": {
    "current": {"start": 1, "end": 2, "readableDate_start": "a", "readableDate_end": "b", "map": "Habitat", "DurationInSecs": 900, "DurationInMinutes": 15},
    "next": {"start": 2, "end": 3, "readableDate_start": "b", "readableDate_end": "c", "map": "Encore", "DurationInSecs": 900, "DurationInMinutes": 15}
  }
}`
