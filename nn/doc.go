// Package nn implements a small feedforward neural-network classifier
// trained with per-sample stochastic gradient descent.
//
// What:
//
//   - Network stacks dense layers: ReLU activations on hidden layers
//     and a softmax output trained against cross-entropy loss.
//   - Train shuffles the samples each epoch and applies one gradient
//     step per sample.
//   - Predict returns the most probable class; Forward exposes the raw
//     class distribution.
//   - Save and Load persist a trained network as JSON.
//
// Why: the image classifier needs a trainable model with no cgo and no
// external runtime, and a plain dense network is enough for 30×30
// inputs.
//
// Complexity: one forward or backward pass costs O(Σ layerᵢ·layerᵢ₊₁);
// training costs that per sample per epoch.
//
// Errors:
//
//   - ErrBadLayout: a layer size is not positive.
//   - ErrBadInput: an input vector does not match the input layer.
//   - ErrBadSample: samples and labels disagree, or a label is out of
//     range.
//   - ErrOptionViolation: a With... option received an invalid value.
package nn
