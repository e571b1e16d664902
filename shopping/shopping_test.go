package shopping_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/shopping"
)

// csvHeader matches the course data set's column layout.
const csvHeader = "Administrative,Administrative_Duration,Informational,Informational_Duration," +
	"ProductRelated,ProductRelated_Duration,BounceRates,ExitRates,PageValues,SpecialDay," +
	"Month,OperatingSystems,Browser,Region,TrafficType,VisitorType,Weekend,Revenue"

func writeCSV(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shopping.csv")
	content := csvHeader + "\n" + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	req := require.New(t)
	d, err := shopping.Load(writeCSV(t,
		"0,0.0,0,0.0,1,0.0,0.2,0.2,0.0,0.0,Feb,1,1,1,1,Returning_Visitor,FALSE,FALSE",
		"2,80.5,0,0.0,10,627.5,0.02,0.05,12.5,0.4,June,2,2,3,4,New_Visitor,TRUE,TRUE",
	))
	req.NoError(err)
	req.Len(d.Evidence, 2)
	req.Equal([]int{0, 1}, d.Labels)

	row := d.Evidence[1]
	req.Len(row, 17)
	req.Equal(2.0, row[0], "Administrative is an int column")
	req.Equal(80.5, row[1], "Administrative_Duration is a float column")
	req.Equal(5.0, row[10], "June maps to month index 5")
	req.Equal(0.0, row[15], "only Returning_Visitor maps to 1")
	req.Equal(1.0, row[16], "Weekend TRUE maps to 1")
}

func TestLoadBadRecord(t *testing.T) {
	_, err := shopping.Load(writeCSV(t,
		"x,0.0,0,0.0,1,0.0,0.2,0.2,0.0,0.0,Feb,1,1,1,1,Returning_Visitor,FALSE,FALSE",
	))
	require.ErrorIs(t, err, shopping.ErrBadRecord)
}

func TestSplit(t *testing.T) {
	req := require.New(t)
	d := &shopping.Dataset{
		Evidence: [][]float64{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}, {9}},
		Labels:   []int{0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
	}
	train, test, err := d.Split(0.4, rand.New(rand.NewSource(1)))
	req.NoError(err)
	req.Len(test.Evidence, 4)
	req.Len(train.Evidence, 6)
	req.Len(train.Labels, 6)

	// every row lands in exactly one side
	seen := make(map[float64]int)
	for _, r := range append(train.Evidence, test.Evidence...) {
		seen[r[0]]++
	}
	req.Len(seen, 10)
	for v, n := range seen {
		req.Equal(1, n, "row %v duplicated", v)
	}
}

func TestKNNPredict(t *testing.T) {
	req := require.New(t)
	train := &shopping.Dataset{
		Evidence: [][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}},
		Labels:   []int{0, 0, 1, 1},
	}
	m, err := shopping.TrainKNN(train, 1)
	req.NoError(err)

	req.Equal(0, m.Predict([]float64{1, 1}))
	req.Equal(1, m.Predict([]float64{9, 9}))
	req.Equal([]int{0, 1}, m.PredictAll([][]float64{{0, 0}, {10, 10}}))

	// k defaults to 1 when non-positive
	m, err = shopping.TrainKNN(train, 0)
	req.NoError(err)
	req.Equal(1, m.Predict([]float64{10, 10}))

	_, err = shopping.TrainKNN(&shopping.Dataset{}, 1)
	req.ErrorIs(err, shopping.ErrEmptyDataset)
}

func TestKNNMajorityVote(t *testing.T) {
	train := &shopping.Dataset{
		Evidence: [][]float64{{0}, {1}, {2}},
		Labels:   []int{1, 1, 0},
	}
	m, err := shopping.TrainKNN(train, 3)
	require.NoError(t, err)
	require.Equal(t, 1, m.Predict([]float64{0.5}), "two of three neighbors vote 1")
}

func TestEvaluate(t *testing.T) {
	req := require.New(t)
	labels := []int{1, 1, 0, 0, 1, 0}
	preds := []int{1, 0, 0, 1, 1, 0}

	ev, err := shopping.Evaluate(labels, preds)
	req.NoError(err)
	req.Equal(4, ev.Correct)
	req.Equal(2, ev.Incorrect)
	req.InDelta(2.0/3, ev.Sensitivity, 1e-9)
	req.InDelta(2.0/3, ev.Specificity, 1e-9)

	_, err = shopping.Evaluate([]int{1}, []int{1, 0})
	req.ErrorIs(err, shopping.ErrMismatchedLengths)
}
