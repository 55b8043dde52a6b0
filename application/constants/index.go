package constants

// facegate response codes
// these consist of 4 digit numbers
//
// the 1st 3 are randomly generated but represent specific scenarios
// 4th indicates if the response requires user interaction through a dialog box. 0 means it does not require. 1 means it requires.

var ACCOUNT_CREATED uint = 9110               // take the user to the login page
var ACCOUNT_EXISTS uint = 9120                // take the user to the login page
var FACE_ENROLLED uint = 3310                 // face template stored, enable face login option
var FACE_NOT_ENROLLED uint = 3320             // prompt the user to enroll a face before trying face login
var FACE_IMAGE_REJECTED uint = 3411           // ask the user to retake the photo
var FACE_NOT_FOUND_IN_IMAGE uint = 3421       // ask the user to retake the photo with their face visible
var MULTIPLE_FACES_IN_IMAGE uint = 3431       // ask the user to retake the photo alone
var FACE_SPOOF_SUSPECTED uint = 3441          // ask the user to retake a live photo
var FACE_VERIFICATION_FAILED uint = 3450      // verification did not clear the configured level
var BIOMETRIC_SERVICE_UNAVAILABLE uint = 3460 // the face models are not loaded on this node

var SUPPORT_EMAIL = "help@facegate.io"

var MAX_DEVICES_PER_USER = 5
