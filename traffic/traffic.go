package traffic

import (
	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/nn"
)

// HiddenUnits is the width of the single hidden layer.
const HiddenUnits = 128

// Train fits a fresh network on the dataset: 30·30·3 inputs, one
// hidden layer of HiddenUnits, one output per category. Training
// options (epochs, learning rate, rng) pass through to nn.New.
func Train(ds *Dataset, opts ...nn.Option) (*nn.Network, error) {
	net, err := nn.New([]int{ImgWidth * ImgHeight * 3, HiddenUnits, ds.Categories}, opts...)
	if err != nil {
		return nil, err
	}
	if err := net.Train(ds.Images, ds.Labels); err != nil {
		return nil, err
	}

	return net, nil
}

// Evaluation summarizes classifier performance on a held-out set.
type Evaluation struct {
	Correct, Incorrect int
	Accuracy           float64
}

// Evaluate runs the network over every image in ds and tallies
// accuracy.
func Evaluate(net *nn.Network, ds *Dataset) (Evaluation, error) {
	var ev Evaluation
	for i, img := range ds.Images {
		class, err := net.Predict(img)
		if err != nil {
			return Evaluation{}, err
		}
		if class == ds.Labels[i] {
			ev.Correct++
		} else {
			ev.Incorrect++
		}
	}
	if total := ev.Correct + ev.Incorrect; total > 0 {
		ev.Accuracy = float64(ev.Correct) / float64(total)
	}

	return ev, nil
}
