package csvparse_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/okian/betcast/internal/domain/csvparse"
	"github.com/okian/betcast/internal/domain/fields"
	"github.com/okian/betcast/internal/domain/model"
	"github.com/okian/betcast/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const greekSheet = `Εβδομάδα,Ημερομηνίες,Στοίχημα #,Ποντάρισμα,Απόδοση,Αποτέλεσμα,Κέρδος/Ζημιά,✓ / ✗,Σωρευτικό Budget
1,1-7/5/2025,1,€10,"2,10",Win,"11,00",✓,"111,00"
1,1-7/5/2025,2,€10,"1,80",Lose,-10,✗,"101,00"
2,8-14/5/2025,1,€10,"2,50",Win,15,✓,"116,00"
`

func TestSplitLine(t *testing.T) {
	Convey("Given a line with a quoted delimiter", t, func() {
		got := csvparse.SplitLine(`"1,2",3,4`, ',')

		Convey("Then the quoted comma stays inside the field", func() {
			So(got, ShouldResemble, []string{"1,2", "3", "4"})
		})
	})

	Convey("Given single quotes and padding", t, func() {
		So(csvparse.SplitLine(` 'a;b' ; c ;`, ';'), ShouldResemble, []string{"a;b", "c", ""})
	})

	Convey("Given an empty line", t, func() {
		So(csvparse.SplitLine("", ','), ShouldResemble, []string{""})
	})
}

func TestSplitHeader(t *testing.T) {
	Convey("Given quoted header labels", t, func() {
		got := csvparse.SplitHeader(` "Week" ,'odd', Stake ,"Notes`, ',')

		Convey("Then one quote layer is stripped and labels trimmed", func() {
			So(got, ShouldResemble, []string{"Week", "odd", "Stake", "Notes"})
		})
	})
}

func TestParse(t *testing.T) {
	ctx := context.Background()
	parser := csvparse.New(csvparse.WithLogger(logger.Get()))

	Convey("Given a Greek-labelled sheet", t, func() {
		res := parser.Parse(ctx, greekSheet)

		Convey("Then every row becomes a canonical record", func() {
			So(len(res.Bets), ShouldEqual, 3)
			So(res.Skipped, ShouldBeEmpty)
			So(res.Issues, ShouldBeEmpty)

			first := res.Bets[0]
			So(first.ID, ShouldEqual, 1)
			So(first.Week, ShouldEqual, 1)
			So(first.DateRange, ShouldEqual, "1-7/5/2025")
			So(first.Stake, ShouldEqual, 10)
			So(first.Odds, ShouldAlmostEqual, 2.1, 1e-9)
			So(first.Result, ShouldEqual, "Win")
			So(first.ProfitLoss, ShouldEqual, 11)
			So(first.Symbol, ShouldEqual, "✓")
			So(first.CumulativeBudget, ShouldEqual, 111)
			So(first.Extra, ShouldBeEmpty)
		})

		Convey("Then ids run 1..N and bet numbers restart per week", func() {
			for i, b := range res.Bets {
				So(b.ID, ShouldEqual, i+1)
			}
			So(res.Bets[1].BetNumber, ShouldEqual, 2)
			So(res.Bets[2].BetNumber, ShouldEqual, 1)
		})
	})

	Convey("Given week cells that are not numbers", t, func() {
		res := parser.Parse(ctx, "Week,Win / Lose\nA,Win\nB,Lose\n")

		Convey("Then both coerce to week 0 and share one sequence", func() {
			So(len(res.Bets), ShouldEqual, 2)
			So(res.Bets[0].Week, ShouldEqual, 0)
			So(res.Bets[1].Week, ShouldEqual, 0)
			So(res.Bets[1].BetNumber, ShouldEqual, 2)
			So(len(res.Issues), ShouldEqual, 2)
			So(res.Issues[0].Field, ShouldEqual, model.FieldWeek)
			So(res.Issues[1].Raw, ShouldEqual, "B")
		})
	})

	Convey("Given an English-labelled sheet with an unknown column", t, func() {
		text := "Week,Date Range,Stake,odd,Win / Lose,Profit / Loss,Symbol (Win / Loss),Cumulative Budget,Tipster\n" +
			"3,15-21/5/2025,10,1.9,Lose,-10,✗,90,Anna\n" +
			"3,15-21/5/2025,10,2,Win,10,✓,100,7\n"
		res := parser.Parse(ctx, text)

		Convey("Then canonical fields are mapped and extras pass through", func() {
			So(len(res.Bets), ShouldEqual, 2)
			So(res.Bets[0].Week, ShouldEqual, 3)
			So(res.Bets[0].Odds, ShouldAlmostEqual, 1.9, 1e-9)

			v, ok := res.Bets[0].Lookup("Tipster")
			So(ok, ShouldBeTrue)
			So(v.IsNumber(), ShouldBeFalse)
			So(v.String(), ShouldEqual, "Anna")

			v, _ = res.Bets[1].Lookup("Tipster")
			f, ok := v.Float()
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, 7)
		})
	})

	Convey("Given lines with the wrong field count", t, func() {
		text := "Week,Stake,Win / Lose\n" +
			"1,10,Win\n" +
			"1,10\n" +
			"\n" +
			"1,10,Lose,extra\n" +
			"2,10,Win\n"
		res := parser.Parse(ctx, text)

		Convey("Then they are dropped and later lines still parse", func() {
			So(len(res.Bets), ShouldEqual, 2)
			So(res.Bets[1].ID, ShouldEqual, 2)
			So(res.Bets[1].Week, ShouldEqual, 2)
			So(len(res.Skipped), ShouldEqual, 3)
			So(res.Skipped[0], ShouldResemble, csvparse.SkippedLine{Line: 3, Reason: csvparse.SkipFieldCount, Fields: 2, Want: 3})
			So(res.Skipped[1].Reason, ShouldEqual, csvparse.SkipBlank)
			So(res.Skipped[2].Line, ShouldEqual, 5)
		})
	})

	Convey("Given a week that comes back after another week", t, func() {
		text := "Week,Result\n1,Win\n1,Win\n2,Lose\n1,Win\n"
		res := parser.Parse(ctx, text)

		Convey("Then the returning week restarts at 1", func() {
			got := []int{}
			for _, b := range res.Bets {
				got = append(got, b.BetNumber)
			}
			So(got, ShouldResemble, []int{1, 2, 1, 1})
		})
	})

	Convey("Given sheet-provided id and bet number columns", t, func() {
		text := "id,Στοίχημα #,Week\n40,9,1\n41,9,1\n"
		res := parser.Parse(ctx, text)

		Convey("Then computed values win", func() {
			So(res.Bets[0].ID, ShouldEqual, 1)
			So(res.Bets[1].ID, ShouldEqual, 2)
			So(res.Bets[1].BetNumber, ShouldEqual, 2)
		})
	})

	Convey("Given unparseable numeric cells", t, func() {
		text := "Week,Stake,Cumulative Budget\nW1,,abc\n"
		res := parser.Parse(ctx, text)

		Convey("Then they become 0 and are reported", func() {
			So(len(res.Bets), ShouldEqual, 1)
			So(res.Bets[0].Stake, ShouldEqual, 0)
			So(len(res.Issues), ShouldEqual, 3)
			So(res.Issues[0], ShouldResemble, csvparse.CellIssue{Line: 2, Header: "Week", Field: model.FieldWeek, Raw: "W1"})
		})
	})

	Convey("Given empty and header-only input", t, func() {
		So(parser.Parse(ctx, "").Bets, ShouldBeEmpty)
		So(parser.Parse(ctx, "  \n\n ").Bets, ShouldBeEmpty)
		So(parser.Parse(ctx, "Week,Stake\n").Bets, ShouldBeEmpty)
	})

	Convey("Given CRLF line endings and a semicolon delimiter", t, func() {
		p := csvparse.New(csvparse.WithDelimiter(';'))
		res := p.Parse(ctx, "Week;odd\r\n1;1,75\r\n2;2\r\n")

		Convey("Then comma decimals survive", func() {
			So(len(res.Bets), ShouldEqual, 2)
			So(res.Bets[0].Odds, ShouldAlmostEqual, 1.75, 1e-9)
		})
	})

	Convey("Given the package-level helper", t, func() {
		So(len(csvparse.Parse(greekSheet)), ShouldEqual, 3)
	})
}

func TestEncode(t *testing.T) {
	Convey("Given parsed bets", t, func() {
		bets := csvparse.Parse(greekSheet)

		for _, set := range []fields.LabelSet{fields.Greek, fields.English} {
			var buf bytes.Buffer
			So(csvparse.Encode(&buf, bets, set, ','), ShouldBeNil)
			back := csvparse.Parse(buf.String())

			So(strings.Count(buf.String(), "\n"), ShouldEqual, len(bets)+1)
			So(back, ShouldResemble, bets)
		}
	})

	Convey("Given a text cell with a quote character", t, func() {
		for _, text := range []string{"O'Brien week", `say "hi"`} {
			bets := []model.Bet{{ID: 1, Week: 1, BetNumber: 1, DateRange: text, Result: model.ResultWin}}
			var buf bytes.Buffer
			err := csvparse.Encode(&buf, bets, fields.English, ',')
			So(errors.Is(err, csvparse.ErrQuoteInText), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, model.FieldDateRange)
		}
	})

	Convey("Given a text cell holding the delimiter", t, func() {
		bets := []model.Bet{{ID: 1, Week: 1, BetNumber: 1, DateRange: "1,7/5", Result: model.ResultWin, CumulativeBudget: 100}}
		var buf bytes.Buffer
		So(csvparse.Encode(&buf, bets, fields.English, ','), ShouldBeNil)
		So(csvparse.Parse(buf.String()), ShouldResemble, bets)
	})
}
