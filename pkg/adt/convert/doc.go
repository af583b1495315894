// Package convert moves values between the option and result containers.
//
// Option[T] is isomorphic to Result[T, Unit]: None corresponds to an Err
// with no payload. Going from Option to Result therefore needs a caller
// supplied error producer, while going the other way drops the error
// payload entirely.
package convert
