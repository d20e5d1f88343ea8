// Package hiscores fetches and summarises players from the RuneScape 3
// "lite" hiscores endpoint.
package hiscores

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/hunterjsb/runebot/internal/logging"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidName    = errors.New("invalid player name")
)

// Client talks to the hiscores API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
	logger  *log.Logger
	now     func() time.Time
}

// NewClient creates a client. A nil cache disables caching.
func NewClient(baseURL string, timeout time.Duration, cache *Cache, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   cache,
		logger:  logger,
		now:     time.Now,
	}
}

// buildURL constructs the lite endpoint URL for a player
func (c *Client) buildURL(name string) string {
	return fmt.Sprintf("%s/index_lite.ws?player=%s", c.baseURL, url.QueryEscape(name))
}

// makeAPIRequest performs the GET and returns the body of a 200 response
func (c *Client) makeAPIRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrPlayerNotFound
	default:
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// Lookup returns the hiscores of a player, served from cache when fresh.
func (c *Client) Lookup(ctx context.Context, name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 12 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if cached, ok := c.cache.Get(name); ok {
		c.logger.Debug("hiscores cache hit", "player", name)
		return cached, nil
	}

	body, err := c.makeAPIRequest(ctx, c.buildURL(name))
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", name, err)
	}

	player, err := ParseLite(name, string(body))
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", name, err)
	}
	player.FetchedAt = c.now()

	c.cache.Set(name, player)
	c.logger.Debug("hiscores fetched", "player", name, "total", player.Overall.Level)
	return player, nil
}

// Compare looks both players up concurrently and diffs every skill.
func (c *Client) Compare(ctx context.Context, a, b string) (*Comparison, error) {
	var pa, pb *Player

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.Lookup(ctx, a)
		pa = p
		return err
	})
	g.Go(func() error {
		p, err := c.Lookup(ctx, b)
		pb = p
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewComparison(pa, pb), nil
}

// NewComparison diffs two players skill by skill.
func NewComparison(a, b *Player) *Comparison {
	cmp := &Comparison{A: a, B: b}
	for _, sa := range a.Skills {
		sb, _ := b.Skill(sa.Name)
		cmp.Deltas = append(cmp.Deltas, SkillDelta{
			Name:   sa.Name,
			LevelA: sa.Level,
			LevelB: sb.Level,
			XPDiff: max(sa.XP, 0) - max(sb.XP, 0),
		})
	}
	return cmp
}

// ParseLite parses the CSV body of index_lite.ws. Skill rows are
// "rank,level,xp"; the rows after them are "rank,score" activities.
func ParseLite(name, body string) (*Player, error) {
	lines := strings.Fields(body)
	if len(lines) < len(SkillNames) {
		return nil, fmt.Errorf("expected at least %d rows, got %d", len(SkillNames), len(lines))
	}

	player := &Player{Name: name}
	for i, skillName := range SkillNames {
		fields, err := parseRow(lines[i], 3)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i, skillName, err)
		}
		skill := Skill{Name: skillName, Rank: fields[0], Level: int(fields[1]), XP: fields[2]}
		if i == 0 {
			player.Overall = skill
			continue
		}
		player.Skills = append(player.Skills, skill)
	}

	for i, line := range lines[len(SkillNames):] {
		fields, err := parseRow(line, 2)
		if err != nil {
			return nil, fmt.Errorf("activity row %d: %w", i, err)
		}
		player.Activities = append(player.Activities, Activity{Index: i, Rank: fields[0], Score: fields[1]})
	}

	return player, nil
}

func parseRow(line string, want int) ([]int64, error) {
	parts := strings.Split(line, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d fields, got %d", want, len(parts))
	}
	out := make([]int64, want)
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
