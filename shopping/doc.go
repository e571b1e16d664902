// Package shopping predicts whether an online-store session ends in a
// purchase, using a nearest-neighbor classifier.
//
// What:
//
//   - Load reads the course CSV: seventeen evidence columns per
//     session (page counts and durations, bounce/exit rates, month,
//     visitor type, weekend flag...) and a boolean Revenue label.
//     Columns are converted by header name — integers, floats, month
//     index 0–11, visitor type and weekend as 0/1.
//   - Split shuffles the rows and holds out a test fraction.
//   - TrainKNN fits a k-nearest-neighbor model (the course uses k=1)
//     with Euclidean distance; Evaluate reports sensitivity (true
//     positive rate) and specificity (true negative rate).
//
// Errors:
//
//   - ErrBadRecord: a cell cannot be converted for its column.
//   - ErrEmptyDataset: no data rows, or a split would leave a side empty.
//   - ErrMismatchedLengths: label and prediction slices differ in length.
package shopping
