package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"showcase/internal/cache"
	"showcase/internal/model"
	"showcase/internal/repository"
)

const (
	// DefaultLeaderboardSize mirrors the three visual podium tiers.
	DefaultLeaderboardSize = 3

	leaderboardCacheKey = "leaderboard"
	leaderboardCacheTTL = 30 * time.Second
)

// RankedProject pairs a project with its 0-indexed leaderboard rank.
type RankedProject struct {
	Rank    int           `json:"rank"`
	Tier    string        `json:"tier,omitempty"`
	Label   string        `json:"label"`
	Project model.Project `json:"project"`
}

// LeaderboardService computes the ranked top-N active projects by votes.
type LeaderboardService interface {
	TopProjects(ctx context.Context, n int) ([]RankedProject, error)
}

type leaderboardService struct {
	projectRepo repository.ProjectRepository
	cache       *cache.Client
}

// NewLeaderboardService creates a new leaderboard service.
func NewLeaderboardService(projectRepo repository.ProjectRepository, cache *cache.Client) LeaderboardService {
	return &leaderboardService{
		projectRepo: projectRepo,
		cache:       cache,
	}
}

// TopProjects returns the top n active projects ranked by votes descending.
// The primary path asks the store for an ordered, limited result. If that
// query fails, it degrades to an unordered fetch of n active candidates
// sorted here. The degraded ranking is approximate: it orders only whatever
// candidates the unordered fetch returned, not the true global top n.
func (s *leaderboardService) TopProjects(ctx context.Context, n int) ([]RankedProject, error) {
	if n <= 0 {
		n = DefaultLeaderboardSize
	}

	if n == DefaultLeaderboardSize {
		if data, _ := s.cache.Get(ctx, leaderboardCacheKey); data != nil {
			var cached []RankedProject
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	projects, err := s.projectRepo.ListTopByVotes(ctx, n)
	if err != nil {
		log.Printf("leaderboard: ordered query failed, using degraded ranking: %v", err)
		projects, err = s.projectRepo.ListActiveLimited(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("leaderboard fallback fetch: %w", err)
		}
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Votes > projects[j].Votes
		})
		if len(projects) > n {
			projects = projects[:n]
		}
	}

	ranked := make([]RankedProject, 0, len(projects))
	for i, p := range projects {
		ranked = append(ranked, RankedProject{
			Rank:    i,
			Tier:    RankTier(i),
			Label:   RankLabel(i),
			Project: p,
		})
	}

	if n == DefaultLeaderboardSize {
		if payload, err := json.Marshal(ranked); err == nil {
			_ = s.cache.Set(ctx, leaderboardCacheKey, payload, leaderboardCacheTTL)
		}
	}

	return ranked, nil
}

// RankTier maps the podium ranks to their visual tiers; anything below the
// podium has no tier.
func RankTier(rank int) string {
	switch rank {
	case 0:
		return "gold"
	case 1:
		return "silver"
	case 2:
		return "bronze"
	default:
		return ""
	}
}

// RankLabel renders a 0-indexed rank as an ordinal ("1st", "2nd", ...),
// defined for arbitrary n.
func RankLabel(rank int) string {
	pos := rank + 1
	suffix := "th"
	// 11th, 12th and 13th break the last-digit rule.
	if pos%100 < 11 || pos%100 > 13 {
		switch pos % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", pos, suffix)
}
