package ranking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/okian/blade/internal/domain/model"
	"github.com/okian/blade/internal/domain/ranking"
	"github.com/okian/blade/internal/domain/scoring"
	"github.com/okian/blade/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func competitor(id string, matches ...model.Outcome) *model.Competitor {
	return &model.Competitor{ID: id, Name: id, Matches: matches}
}

func names(standings []model.Standing) []string {
	out := make([]string, len(standings))
	for i, s := range standings {
		out[i] = s.Competitor.Name
	}
	return out
}

func scores(standings []model.Standing) []int {
	out := make([]int, len(standings))
	for i, s := range standings {
		out[i] = s.Score
	}
	return out
}

func TestService_Rank(t *testing.T) {
	Convey("Given a ranking service", t, func() {
		ctx := context.Background()
		svc := ranking.New(scoring.NewCalculator())

		Convey("When ranking competitors with distinct scores", func() {
			players := []*model.Competitor{
				competitor("Alice", model.Draw, model.Loss),
				competitor("Bob", model.Win, model.Win),
				competitor("Charlie", model.Win, model.Draw),
			}

			standings, err := svc.Rank(ctx, players)

			Convey("Then they are ordered by score descending", func() {
				So(err, ShouldBeNil)
				if diff := cmp.Diff([]string{"Bob", "Charlie", "Alice"}, names(standings)); diff != "" {
					t.Errorf("ranking order mismatch (-want +got):\n%s", diff)
				}
				So(scores(standings), ShouldResemble, []int{6, 4, 1})
				So(standings[0].Rank, ShouldEqual, 1)
				So(standings[2].Rank, ShouldEqual, 3)
			})

			Convey("And the caller's slice keeps its order", func() {
				So(players[0].Name, ShouldEqual, "Alice")
				So(players[1].Name, ShouldEqual, "Bob")
			})
		})

		Convey("When two competitors tie", func() {
			players := []*model.Competitor{
				competitor("Alice", model.Win, model.Loss),
				competitor("Bob", model.Loss, model.Win),
				competitor("Charlie", model.Loss, model.Loss),
			}

			standings, err := svc.Rank(ctx, players)

			Convey("Then they keep their input order", func() {
				So(err, ShouldBeNil)
				So(names(standings), ShouldResemble, []string{"Alice", "Bob", "Charlie"})
				So(scores(standings), ShouldResemble, []int{3, 3, 0})
			})
		})

		Convey("When a later competitor ties with an earlier one behind a leader", func() {
			players := []*model.Competitor{
				competitor("Dana", model.Draw),
				competitor("Eve", model.Win, model.Win),
				competitor("Finn", model.Draw),
			}

			standings, err := svc.Rank(ctx, players)

			Convey("Then the sort is stable", func() {
				So(err, ShouldBeNil)
				So(names(standings), ShouldResemble, []string{"Eve", "Dana", "Finn"})
			})
		})

		Convey("When everyone only lost", func() {
			standings, err := svc.Rank(ctx, []*model.Competitor{
				competitor("Alice", model.Loss),
				competitor("Bob", model.Loss, model.Loss),
			})

			Convey("Then every score is zero", func() {
				So(err, ShouldBeNil)
				So(scores(standings), ShouldResemble, []int{0, 0})
			})
		})

		Convey("When ranking the same competitors twice", func() {
			players := []*model.Competitor{
				competitor("Alice", model.Win, model.Win, model.Win),
				competitor("Bob", model.Draw),
				competitor("Charlie", model.Win, model.Win, model.Win, model.Win),
			}

			first, err1 := svc.Rank(ctx, players)
			second, err2 := svc.Rank(ctx, players)

			Convey("Then the result is identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(names(second), ShouldResemble, names(first))
				So(scores(second), ShouldResemble, scores(first))
				So(scores(first), ShouldResemble, []int{17, 14, 1})
			})
		})

		Convey("When the input is empty", func() {
			for _, in := range [][]*model.Competitor{nil, {}} {
				standings, err := svc.Rank(ctx, in)

				So(standings, ShouldBeNil)
				So(errors.Is(err, ranking.ErrNoPlayers), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "No players found")
			}
		})

		Convey("When a competitor is nil", func() {
			_, err := svc.Rank(ctx, []*model.Competitor{competitor("Alice"), nil})

			Convey("Then ranking fails", func() {
				So(errors.Is(err, ranking.ErrNilCompetitor), ShouldBeTrue)
			})
		})
	})
}

func TestService_RankIgnoresSanctionsByDefault(t *testing.T) {
	Convey("Given competitors carrying sanctions", t, func() {
		ctx := context.Background()
		players := []*model.Competitor{
			{ID: "1", Name: "Alice", Matches: []model.Outcome{model.Win}, PenaltyPoints: 2},
			{ID: "2", Name: "Bob", Matches: []model.Outcome{model.Win, model.Win}, Disqualified: true},
			{ID: "3", Name: "Cleo", Matches: []model.Outcome{model.Draw}, PenaltyPoints: -4},
		}

		Convey("When ranking with the default service", func() {
			standings, err := ranking.New(scoring.NewCalculator()).Rank(ctx, players)

			Convey("Then only match histories count", func() {
				So(err, ShouldBeNil)
				So(names(standings), ShouldResemble, []string{"Bob", "Alice", "Cleo"})
				So(scores(standings), ShouldResemble, []int{6, 3, 1})
			})
		})

		Convey("When ranking with sanctions enabled", func() {
			svc := ranking.New(scoring.NewCalculator(), ranking.WithSanctions(true))

			Convey("And penalties are valid", func() {
				players[2].PenaltyPoints = 0
				standings, err := svc.Rank(ctx, players)

				Convey("Then disqualification and penalties apply", func() {
					So(err, ShouldBeNil)
					So(names(standings), ShouldResemble, []string{"Alice", "Cleo", "Bob"})
					So(scores(standings), ShouldResemble, []int{1, 1, 0})
				})
			})

			Convey("And a penalty is negative", func() {
				_, err := svc.Rank(ctx, players)

				Convey("Then ranking fails with the scoring error", func() {
					So(errors.Is(err, scoring.ErrInvalidPenalty), ShouldBeTrue)
					So(err.Error(), ShouldContainSubstring, "penalty")
				})
			})
		})
	})
}

func TestService_Champion(t *testing.T) {
	Convey("Given a ranking service", t, func() {
		ctx := context.Background()
		svc := ranking.New(scoring.NewCalculator(), ranking.WithLogger(logger.Nop()))

		Convey("When picking a champion", func() {
			champion, err := svc.Champion(ctx, []*model.Competitor{
				competitor("Alice", model.Win),
				competitor("Bob", model.Win, model.Win),
			})

			Convey("Then the highest score wins", func() {
				So(err, ShouldBeNil)
				So(champion.Competitor.Name, ShouldEqual, "Bob")
				So(champion.Score, ShouldEqual, 6)
				So(champion.Rank, ShouldEqual, 1)
			})
		})

		Convey("When the top score is tied", func() {
			champion, err := svc.Champion(ctx, []*model.Competitor{
				competitor("Alice", model.Draw),
				competitor("Bob", model.Win),
				competitor("Cleo", model.Draw, model.Draw, model.Draw),
			})

			Convey("Then the earliest competitor wins", func() {
				So(err, ShouldBeNil)
				So(champion.Competitor.Name, ShouldEqual, "Bob")
			})
		})

		Convey("When there are no competitors", func() {
			_, err := svc.Champion(ctx, nil)

			Convey("Then it fails with ErrNoPlayers", func() {
				So(errors.Is(err, ranking.ErrNoPlayers), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "No players found")
			})
		})
	})
}

func TestService_WithoutLogger(t *testing.T) {
	Convey("Given a ranking service built without a logger and no global logger", t, func() {
		svc := ranking.New(scoring.NewCalculator())

		Convey("When ranking competitors", func() {
			var standings []model.Standing
			var err error
			So(func() {
				standings, err = svc.Rank(context.Background(), []*model.Competitor{
					competitor("Alice", model.Win),
				})
			}, ShouldNotPanic)

			Convey("Then it still returns standings", func() {
				So(err, ShouldBeNil)
				So(standings, ShouldHaveLength, 1)
			})
		})
	})
}
