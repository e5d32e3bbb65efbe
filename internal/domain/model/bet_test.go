package model_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/betcast/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestValue(t *testing.T) {
	Convey("Given numeric and text values", t, func() {
		n := model.Number(1.5)
		s := model.Text("abc")

		Convey("Then accessors distinguish them", func() {
			f, ok := n.Float()
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, 1.5)
			_, ok = s.Float()
			So(ok, ShouldBeFalse)
			So(n.String(), ShouldEqual, "1.5")
			So(s.String(), ShouldEqual, "abc")
		})

		Convey("Then JSON keeps the kind", func() {
			b, err := json.Marshal([]model.Value{n, s, model.Text("")})
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `[1.5,"abc",""]`)

			var back []model.Value
			So(json.Unmarshal(b, &back), ShouldBeNil)
			So(back[0].IsNumber(), ShouldBeTrue)
			So(back[1].String(), ShouldEqual, "abc")
		})
	})
}

func TestBetJSON(t *testing.T) {
	Convey("Given a bet with pass-through fields", t, func() {
		b := model.Bet{ID: 1, Week: 2, DateRange: "8-14/5/2025", BetNumber: 1, Stake: 10, Odds: 2.1, Result: model.ResultWin, ProfitLoss: 11, Symbol: "✓", CumulativeBudget: 111}
		b.SetExtra("Notes", model.Text("derby"))
		b.SetExtra("Notes", model.Text("final"))
		b.SetExtra("id", model.Number(99))

		Convey("When marshalled", func() {
			raw, err := json.Marshal(b)
			So(err, ShouldBeNil)
			var m map[string]any
			So(json.Unmarshal(raw, &m), ShouldBeNil)

			Convey("Then canonical and extra fields sit side by side", func() {
				So(m["id"], ShouldEqual, float64(1))
				So(m["week"], ShouldEqual, float64(2))
				So(m["symbol"], ShouldEqual, "✓")
				So(m["Notes"], ShouldEqual, "final")
				So(len(m), ShouldEqual, len(model.CanonicalFields)+1)
			})
		})

		Convey("Then outcome helpers are exact", func() {
			So(b.IsWin(), ShouldBeTrue)
			So(model.Bet{Result: "win"}.IsWin(), ShouldBeFalse)
			So(model.Bet{Result: model.ResultLose}.IsLoss(), ShouldBeTrue)
		})

		Convey("Then Lookup finds extras only", func() {
			v, ok := b.Lookup("Notes")
			So(ok, ShouldBeTrue)
			So(v.String(), ShouldEqual, "final")
			_, ok = b.Lookup("missing")
			So(ok, ShouldBeFalse)
		})
	})
}
