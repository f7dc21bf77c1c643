package model_test

import (
	"errors"
	"testing"

	"github.com/okian/blade/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestOutcome(t *testing.T) {
	convey.Convey("Given the three match outcomes", t, func() {
		convey.Convey("Then each has a readable name", func() {
			convey.So(model.Win.String(), convey.ShouldEqual, "win")
			convey.So(model.Draw.String(), convey.ShouldEqual, "draw")
			convey.So(model.Loss.String(), convey.ShouldEqual, "loss")
		})

		convey.Convey("Then only the known values are valid", func() {
			convey.So(model.Win.Valid(), convey.ShouldBeTrue)
			convey.So(model.Draw.Valid(), convey.ShouldBeTrue)
			convey.So(model.Loss.Valid(), convey.ShouldBeTrue)
			convey.So(model.Outcome(0).Valid(), convey.ShouldBeFalse)
			convey.So(model.Outcome(7).Valid(), convey.ShouldBeFalse)
			convey.So(model.Outcome(7).String(), convey.ShouldEqual, "outcome(7)")
		})
	})

	convey.Convey("Given outcome text", t, func() {
		convey.Convey("When parsing long and short forms", func() {
			cases := map[string]model.Outcome{
				"win": model.Win, "W": model.Win, " Win ": model.Win,
				"draw": model.Draw, "d": model.Draw,
				"LOSS": model.Loss, "l": model.Loss,
			}
			for in, want := range cases {
				got, err := model.ParseOutcome(in)
				convey.So(err, convey.ShouldBeNil)
				convey.So(got, convey.ShouldEqual, want)
			}
		})

		convey.Convey("When parsing an unknown value", func() {
			_, err := model.ParseOutcome("forfeit")

			convey.Convey("Then it fails with ErrUnknownOutcome", func() {
				convey.So(errors.Is(err, model.ErrUnknownOutcome), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "forfeit")
			})
		})

		convey.Convey("When round-tripping through text", func() {
			b, err := model.Draw.MarshalText()
			convey.So(err, convey.ShouldBeNil)

			var o model.Outcome
			convey.So(o.UnmarshalText(b), convey.ShouldBeNil)
			convey.So(o, convey.ShouldEqual, model.Draw)

			_, err = model.Outcome(0).MarshalText()
			convey.So(errors.Is(err, model.ErrUnknownOutcome), convey.ShouldBeTrue)
		})
	})
}

func TestCompetitor_AddMatch(t *testing.T) {
	convey.Convey("Given a competitor with no matches", t, func() {
		c := &model.Competitor{ID: "1", Name: "Alice"}

		convey.Convey("When matches are added", func() {
			c.AddMatch(model.Win)
			c.AddMatch(model.Loss)
			c.AddMatch(model.Draw)

			convey.Convey("Then they are kept in chronological order", func() {
				convey.So(c.Matches, convey.ShouldResemble, []model.Outcome{model.Win, model.Loss, model.Draw})
			})
		})
	})
}
