package openligadb

// Wire shapes as returned by the OpenLigaDB API. Nested objects can be
// null or partially filled; the mapper is the only place that looks at
// them.

type wireGroup struct {
	GroupName    string `json:"groupName"`
	GroupOrderID int    `json:"groupOrderID"`
	GroupID      int64  `json:"groupID"`
}

type wireTeam struct {
	TeamID        int64  `json:"teamId"`
	TeamName      string `json:"teamName"`
	ShortName     string `json:"shortName"`
	TeamIconURL   string `json:"teamIconUrl"`
	TeamGroupName string `json:"teamGroupName"`
}

type wireResult struct {
	ResultID          int64  `json:"resultID"`
	ResultName        string `json:"resultName"`
	PointsTeam1       int    `json:"pointsTeam1"`
	PointsTeam2       int    `json:"pointsTeam2"`
	ResultOrderID     int    `json:"resultOrderID"`
	ResultTypeID      int    `json:"resultTypeID"`
	ResultDescription string `json:"resultDescription"`
}

type wireGoal struct {
	GoalID         int64  `json:"goalID"`
	ScoreTeam1     int    `json:"scoreTeam1"`
	ScoreTeam2     int    `json:"scoreTeam2"`
	GoalGetterName string `json:"goalGetterName"`
	MatchMinute    *int   `json:"matchMinute"`
	Comment        string `json:"comment"`
}

type wireLocation struct {
	LocationID      int64  `json:"locationID"`
	LocationCity    string `json:"locationCity"`
	LocationStadium string `json:"locationStadium"`
}

type wireMatch struct {
	MatchID            int64         `json:"matchID"`
	MatchDateTime      string        `json:"matchDateTime"`
	TimeZoneID         string        `json:"timeZoneID"`
	LeagueID           int64         `json:"leagueId"`
	LeagueName         string        `json:"leagueName"`
	LeagueSeason       int           `json:"leagueSeason"`
	LeagueShortcut     string        `json:"leagueShortcut"`
	MatchDateTimeUTC   string        `json:"matchDateTimeUTC"`
	Group              *wireGroup    `json:"group"`
	Team1              *wireTeam     `json:"team1"`
	Team2              *wireTeam     `json:"team2"`
	LastUpdateDateTime string        `json:"lastUpdateDateTime"`
	MatchIsFinished    bool          `json:"matchIsFinished"`
	MatchResults       []wireResult  `json:"matchResults"`
	Goals              []wireGoal    `json:"goals"`
	Location           *wireLocation `json:"location"`
	NumberOfViewers    *int          `json:"numberOfViewers"`
}

type wireSport struct {
	SportID   int64  `json:"sportId"`
	SportName string `json:"sportName"`
}

type wireLeague struct {
	LeagueID       int64     `json:"leagueId"`
	LeagueName     string    `json:"leagueName"`
	LeagueShortcut string    `json:"leagueShortcut"`
	LeagueSeason   string    `json:"leagueSeason"`
	Sport          wireSport `json:"sport"`
}
