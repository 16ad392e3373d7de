package lisp

// preludeSource is loaded into every fresh Interpreter before user code
// runs. It exercises nothing the core language doesn't already provide
// (lambda, define, define-macro, quasiquote, the required builtins);
// it exists only because a complete dialect needs list, map and a
// couple of conditional conveniences, and those are better expressed in
// the dialect itself than bolted on as Go builtins. This mirrors the
// "file loading of a prelude library" collaborator the evaluator
// expects but does not itself specify.
const preludeSource = `
(define (not x) (if x #f #t))

(define (list . xs) xs)

(define (map f lst)
  (if (null? lst)
      '()
      (cons (f (car lst)) (map f (cdr lst)))))

(define (for-each f lst)
  (if (null? lst)
      #f
      (begin (f (car lst)) (for-each f (cdr lst)))))

(define (append a b)
  (if (null? a) b (cons (car a) (append (cdr a) b))))

(define (reverse lst)
  (define (go lst acc)
    (if (null? lst) acc (go (cdr lst) (cons (car lst) acc))))
  (go lst '()))

(define (length lst)
  (define (go lst n)
    (if (null? lst) n (go (cdr lst) (+ n 1))))
  (go lst 0))

(define-macro (when c . body)
  (list 'if c (cons 'begin body) #f))

(define-macro (unless c . body)
  (list 'if c #f (cons 'begin body)))

;; let must exist before cond, whose own expansion uses (let ...) to
;; name the clause under inspection.
(define-macro (let bindings . body)
  (cons (cons 'lambda (cons (map car bindings) body))
        (map (lambda (b) (car (cdr b))) bindings)))

(define-macro (cond . clauses)
  (if (null? clauses)
      #f
      (let ((clause (car clauses)))
        (if (eq? (car clause) 'else)
            (cons 'begin (cdr clause))
            (list 'if (car clause) (cons 'begin (cdr clause))
                  (cons 'cond (cdr clauses)))))))

;; filter uses cond, so it must come after cond is registered.
(define (filter pred lst)
  (cond ((null? lst) '())
        ((pred (car lst)) (cons (car lst) (filter pred (cdr lst))))
        (else (filter pred (cdr lst)))))
`
