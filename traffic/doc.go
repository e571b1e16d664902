// Package traffic classifies road-sign photographs into sign
// categories with a neural network.
//
// What:
//
//   - LoadDataset walks a data directory whose numbered subdirectories
//     each hold one category's images, decoding and resizing every
//     image to 30×30 RGB in parallel.
//   - Split partitions a dataset into training and evaluation subsets.
//   - Train fits an nn.Network with one hidden layer on the flattened,
//     normalized pixels.
//   - Evaluate reports classification accuracy on held-out images.
//
// PNG, JPEG and GIF inputs are accepted; every image is scaled to
// ImgWidth×ImgHeight before flattening, so source dimensions do not
// matter.
//
// Errors:
//
//   - ErrEmptyDataset: no category directory contained a decodable
//     image.
//   - ErrBadImage: an image file could not be decoded.
package traffic
