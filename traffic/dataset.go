package traffic

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	// Decoders for the image formats found in the data set.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// Image geometry and split parameters.
const (
	// ImgWidth and ImgHeight are the dimensions every image is scaled
	// to before flattening.
	ImgWidth  = 30
	ImgHeight = 30

	// TestFraction is the share of images held out for evaluation.
	TestFraction = 0.4
)

// Sentinel errors for dataset loading.
var (
	// ErrEmptyDataset indicates a data directory with no decodable
	// images.
	ErrEmptyDataset = errors.New("traffic: empty dataset")

	// ErrBadImage indicates an image file that could not be decoded.
	ErrBadImage = errors.New("traffic: undecodable image")
)

// Dataset pairs flattened 30×30 RGB images with their category labels.
type Dataset struct {
	// Images holds one ImgWidth·ImgHeight·3 vector per image, channel
	// values normalized to [0, 1].
	Images [][]float64
	// Labels holds the category index of each image.
	Labels []int
	// Categories is the number of distinct categories in the source
	// directory.
	Categories int
}

// LoadDataset reads every image under dir. Each immediate
// subdirectory whose name is a non-negative integer is one category;
// categories load concurrently, one goroutine per category capped at
// GOMAXPROCS.
// Returns ErrEmptyDataset when nothing decodable is found and wraps
// ErrBadImage per broken file.
func LoadDataset(dir string) (*Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("traffic: read data dir: %w", err)
	}

	type category struct {
		label int
		path  string
	}
	var categories []category
	maxLabel := -1
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		label, err := strconv.Atoi(e.Name())
		if err != nil || label < 0 {
			continue
		}
		categories = append(categories, category{label: label, path: filepath.Join(dir, e.Name())})
		if label > maxLabel {
			maxLabel = label
		}
	}
	if len(categories) == 0 {
		return nil, ErrEmptyDataset
	}

	type loaded struct {
		images [][]float64
	}
	slots := make([]loaded, len(categories))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, cat := range categories {
		i, cat := i, cat
		g.Go(func() error {
			files, err := os.ReadDir(cat.path)
			if err != nil {
				return fmt.Errorf("traffic: read category %d: %w", cat.label, err)
			}
			for _, f := range files {
				if f.IsDir() {
					continue
				}
				vec, err := loadImage(filepath.Join(cat.path, f.Name()))
				if err != nil {
					return err
				}
				slots[i].images = append(slots[i].images, vec)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := &Dataset{Categories: maxLabel + 1}
	for i, cat := range categories {
		for _, vec := range slots[i].images {
			ds.Images = append(ds.Images, vec)
			ds.Labels = append(ds.Labels, cat.label)
		}
	}
	if len(ds.Images) == 0 {
		return nil, ErrEmptyDataset
	}

	return ds, nil
}

// loadImage decodes one file, scales it to ImgWidth×ImgHeight, and
// flattens it to normalized RGB.
func loadImage(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("traffic: open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadImage, path, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, ImgWidth, ImgHeight))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	vec := make([]float64, 0, ImgWidth*ImgHeight*3)
	for y := 0; y < ImgHeight; y++ {
		for x := 0; x < ImgWidth; x++ {
			off := dst.PixOffset(x, y)
			vec = append(vec,
				float64(dst.Pix[off])/255,
				float64(dst.Pix[off+1])/255,
				float64(dst.Pix[off+2])/255,
			)
		}
	}

	return vec, nil
}

// Split partitions the dataset into train and test subsets, holding
// out testFraction of the images chosen by rng. A nil rng means
// time-seeded.
func (ds *Dataset) Split(testFraction float64, rng *rand.Rand) (train, test *Dataset) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	perm := rng.Perm(len(ds.Images))
	cut := int(float64(len(perm)) * testFraction)

	train = &Dataset{Categories: ds.Categories}
	test = &Dataset{Categories: ds.Categories}
	for i, idx := range perm {
		dst := train
		if i < cut {
			dst = test
		}
		dst.Images = append(dst.Images, ds.Images[idx])
		dst.Labels = append(dst.Labels, ds.Labels[idx])
	}

	return train, test
}
