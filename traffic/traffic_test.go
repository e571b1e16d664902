package traffic_test

import (
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/nn"
	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/traffic"
)

// writeSign writes a w×h PNG filled with a solid color.
func writeSign(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// writeDataset lays out two categories of solid-color images: category
// 0 is red, category 1 is blue. Source sizes vary to exercise scaling.
func writeDataset(t *testing.T, perCategory int) string {
	t.Helper()
	dir := t.TempDir()
	colors := []color.RGBA{
		{R: 220, A: 255},
		{B: 220, A: 255},
	}
	for label, c := range colors {
		catDir := filepath.Join(dir, []string{"0", "1"}[label])
		require.NoError(t, os.Mkdir(catDir, 0o755))
		for i := 0; i < perCategory; i++ {
			size := 20 + 5*i
			writeSign(t, filepath.Join(catDir, "img"+string(rune('a'+i))+".png"), size, size, c)
		}
	}

	return dir
}

func TestLoadDataset(t *testing.T) {
	req := require.New(t)
	ds, err := traffic.LoadDataset(writeDataset(t, 3))
	req.NoError(err)
	req.Equal(2, ds.Categories)
	req.Len(ds.Images, 6)
	req.Len(ds.Labels, 6)

	for _, img := range ds.Images {
		req.Len(img, traffic.ImgWidth*traffic.ImgHeight*3)
		for _, v := range img {
			req.GreaterOrEqual(v, 0.0)
			req.LessOrEqual(v, 1.0)
		}
	}
}

func TestLoadDatasetEmpty(t *testing.T) {
	_, err := traffic.LoadDataset(t.TempDir())
	require.ErrorIs(t, err, traffic.ErrEmptyDataset)
}

func TestLoadDatasetBadImage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "0"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0", "broken.png"), []byte("not an image"), 0o644))

	_, err := traffic.LoadDataset(dir)
	require.ErrorIs(t, err, traffic.ErrBadImage)
}

func TestSplit(t *testing.T) {
	req := require.New(t)
	ds, err := traffic.LoadDataset(writeDataset(t, 5))
	req.NoError(err)

	train, test := ds.Split(traffic.TestFraction, rand.New(rand.NewSource(1)))
	req.Len(test.Images, 4)
	req.Len(train.Images, 6)
	req.Equal(ds.Categories, train.Categories)
}

func TestSplitNilRand(t *testing.T) {
	req := require.New(t)
	ds, err := traffic.LoadDataset(writeDataset(t, 5))
	req.NoError(err)

	train, test := ds.Split(traffic.TestFraction, nil)
	req.Len(test.Images, 4)
	req.Len(train.Images, 6)
}

// TestTrainAndEvaluate fits the classifier on trivially separable
// solid-color signs; it should classify them near-perfectly.
func TestTrainAndEvaluate(t *testing.T) {
	req := require.New(t)
	ds, err := traffic.LoadDataset(writeDataset(t, 6))
	req.NoError(err)

	rng := rand.New(rand.NewSource(9))
	train, test := ds.Split(traffic.TestFraction, rng)

	net, err := traffic.Train(train,
		nn.WithEpochs(20),
		nn.WithLearningRate(0.05),
		nn.WithRand(rng),
	)
	req.NoError(err)

	ev, err := traffic.Evaluate(net, test)
	req.NoError(err)
	req.Equal(len(test.Images), ev.Correct+ev.Incorrect)
	req.GreaterOrEqual(ev.Accuracy, 0.99, "solid colors should be trivially separable")
}
