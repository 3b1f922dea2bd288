package store

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/domain/seasons"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
)

func text(v pgtype.Text) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func intPtr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}

func floatPtr(v pgtype.Float8) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// nullable maps empty optional keys to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func scanSeason(row pgx.Row) (seasons.Season, error) {
	var s seasons.Season
	err := row.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt)
	return s, err
}

func scanTeam(row pgx.Row) (teams.Team, error) {
	var (
		t    teams.Team
		logo pgtype.Text
	)
	err := row.Scan(&t.ID, &t.SeasonID, &t.Name, &logo, &t.CreatedAt)
	t.LogoURL = text(logo)
	return t, err
}

type playerNulls struct {
	email, phone, photo, position pgtype.Text
}

func (n *playerNulls) apply(p *players.Player) {
	p.Email = text(n.email)
	p.Phone = text(n.phone)
	p.PhotoURL = text(n.photo)
	p.Position = text(n.position)
}

func scanPlayer(row pgx.Row) (players.Player, error) {
	var (
		p     players.Player
		nulls playerNulls
	)
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &nulls.email, &nulls.phone, &nulls.photo, &nulls.position, &p.CreatedAt)
	nulls.apply(&p)
	return p, err
}

func scanRosterEntry(row pgx.Row) (teams.RosterEntry, error) {
	var (
		e      teams.RosterEntry
		jersey pgtype.Text
		nulls  playerNulls
	)
	err := row.Scan(
		&e.ID, &e.TeamID, &e.PlayerID, &jersey, &e.JoinedAt,
		&e.Player.ID, &e.Player.FirstName, &e.Player.LastName,
		&nulls.email, &nulls.phone, &nulls.photo, &nulls.position, &e.Player.CreatedAt,
	)
	e.JerseyNumber = text(jersey)
	nulls.apply(&e.Player)
	return e, err
}

// gameScan holds the destinations for gameSelect's column list.
type gameScan struct {
	game                 games.Game
	location             pgtype.Text
	homeScore, awayScore pgtype.Int4
	homeName, awayName   string
	homeLogo, awayLogo   pgtype.Text
	seasonName           string
}

func (g *gameScan) dest() []any {
	return []any{
		&g.game.ID, &g.game.SeasonID, &g.game.HomeTeamID, &g.game.AwayTeamID, &g.game.ScheduledAt, &g.location,
		&g.homeScore, &g.awayScore, &g.game.IsFinal, &g.game.CreatedAt,
		&g.homeName, &g.homeLogo, &g.awayName, &g.awayLogo, &g.seasonName,
	}
}

func (g *gameScan) result() games.Game {
	out := g.game
	out.Location = text(g.location)
	out.HomeScore = intPtr(g.homeScore)
	out.AwayScore = intPtr(g.awayScore)
	out.HomeTeam = &teams.Ref{ID: out.HomeTeamID, Name: g.homeName, LogoURL: text(g.homeLogo)}
	out.AwayTeam = &teams.Ref{ID: out.AwayTeamID, Name: g.awayName, LogoURL: text(g.awayLogo)}
	out.Season = &seasons.Ref{ID: out.SeasonID, Name: g.seasonName}
	return out
}

func scanGame(row pgx.Row) (games.Game, error) {
	var g gameScan
	err := row.Scan(g.dest()...)
	return g.result(), err
}

func lineDest(l *games.PlayerStatLine) []any {
	return []any{
		&l.ID, &l.GameID, &l.PlayerID, &l.TeamID, &l.MinutesPlayed,
		&l.Points, &l.Rebounds, &l.Assists, &l.Steals, &l.Blocks, &l.Turnovers,
		&l.FieldGoalsMade, &l.FieldGoalsAttempted,
		&l.ThreePointersMade, &l.ThreePointersAttempted,
		&l.FreeThrowsMade, &l.FreeThrowsAttempted,
		&l.CreatedAt, &l.UpdatedAt,
	}
}

func scanBoxScoreLine(row pgx.Row) (games.PlayerStatLine, error) {
	var (
		l        games.PlayerStatLine
		player   players.Ref
		position pgtype.Text
		team     teams.Ref
		logo     pgtype.Text
	)
	dest := append(lineDest(&l), &player.FirstName, &player.LastName, &position, &team.Name, &logo)
	if err := row.Scan(dest...); err != nil {
		return l, err
	}
	player.ID = l.PlayerID
	player.Position = text(position)
	team.ID = l.TeamID
	team.LogoURL = text(logo)
	l.Player = &player
	l.Team = &team
	return l, nil
}

func scanPlayerGameLine(row pgx.Row) (games.PlayerStatLine, error) {
	var (
		l games.PlayerStatLine
		g gameScan
	)
	if err := row.Scan(append(lineDest(&l), g.dest()...)...); err != nil {
		return l, err
	}
	game := g.result()
	l.Game = &game
	return l, nil
}

type seasonStatsScan struct {
	stats                  players.SeasonStats
	photo                  pgtype.Text
	fgPct, threePct, ftPct pgtype.Float8
}

func (s *seasonStatsScan) dest() []any {
	st := &s.stats
	return []any{
		&st.PlayerID, &st.SeasonID, &st.FirstName, &st.LastName, &s.photo, &st.GamesPlayed,
		&st.PPG, &st.RPG, &st.APG, &st.SPG, &st.BPG, &st.TPG, &s.fgPct, &s.threePct, &s.ftPct,
		&st.TotalPoints, &st.TotalRebounds, &st.TotalAssists,
	}
}

func (s *seasonStatsScan) result() players.SeasonStats {
	out := s.stats
	out.PhotoURL = text(s.photo)
	out.FGPct = floatPtr(s.fgPct)
	out.ThreePtPct = floatPtr(s.threePct)
	out.FTPct = floatPtr(s.ftPct)
	return out
}

func scanSeasonStats(row pgx.Row) (players.SeasonStats, error) {
	var s seasonStatsScan
	err := row.Scan(s.dest()...)
	return s.result(), err
}

func scanLeaderboardEntry(row pgx.Row) (players.LeaderboardEntry, error) {
	var (
		s seasonStatsScan
		e players.LeaderboardEntry
	)
	err := row.Scan(append(s.dest(), &e.PPGRank, &e.RPGRank, &e.APGRank, &e.FGPctRank)...)
	e.SeasonStats = s.result()
	return e, err
}

func scanCareerStats(row pgx.Row) (players.CareerStats, error) {
	var (
		c     players.CareerStats
		photo pgtype.Text
		fgPct pgtype.Float8
	)
	err := row.Scan(&c.PlayerID, &c.FirstName, &c.LastName, &photo, &c.CareerGames,
		&c.CareerPPG, &c.CareerRPG, &c.CareerAPG, &fgPct, &c.CareerTotalPoints)
	c.PhotoURL = text(photo)
	c.CareerFGPct = floatPtr(fgPct)
	return c, err
}

func scanEarnedBadge(row pgx.Row) (players.EarnedBadge, error) {
	var (
		b                           players.EarnedBadge
		gameID, seasonID            pgtype.Text
		description, icon, category pgtype.Text
	)
	err := row.Scan(&b.ID, &b.PlayerID, &b.BadgeID, &gameID, &seasonID, &b.EarnedAt,
		&b.Badge.ID, &b.Badge.Name, &description, &icon, &category, &b.Badge.Rarity)
	b.GameID = text(gameID)
	b.SeasonID = text(seasonID)
	b.Badge.Description = text(description)
	b.Badge.IconURL = text(icon)
	b.Badge.Category = text(category)
	return b, err
}
